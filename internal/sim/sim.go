// Package sim advances the player and the enemy swarm shared by the two
// game demos. It holds no graphics state; see package view for drawing.
package sim

import (
	"math"
	"math/rand"

	"chosenoffset.com/folio/internal/camera"
	"chosenoffset.com/folio/internal/entity"
)

// Intent is the read-only movement intent supplied by the input adapter.
// Each axis is -1, 0 or +1.
type Intent interface {
	Axis() (dx, dy float64)
}

type noIntent struct{}

func (noIntent) Axis() (float64, float64) { return 0, 0 }

// Simulation owns the entities and the camera for one hosted demo.
type Simulation struct {
	opts   Options
	intent Intent
	rng    *rand.Rand

	Player  entity.Entity
	Enemies []entity.Entity
	Camera  camera.Camera

	clock    float64
	steps    int
	bounces  int
	onBounce func(*entity.Entity)
}

// New creates a simulation with the player at the world centre. When
// opts.SpawnOnStart is set the enemy population is spawned there too.
// A nil intent means the player never moves.
func New(opts Options, intent Intent, rng *rand.Rand) *Simulation {
	if intent == nil {
		intent = noIntent{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Simulation{
		opts:   opts,
		intent: intent,
		rng:    rng,
		Player: entity.Entity{
			X:      opts.WorldWidth / 2,
			Y:      opts.WorldHeight / 2,
			Width:  opts.PlayerSize,
			Height: opts.PlayerSize,
			Color:  opts.PlayerColor,
		},
	}
	if opts.SpawnOnStart {
		s.ResetAt(opts.WorldWidth/2, opts.WorldHeight/2)
	}
	return s
}

// Options returns the options the simulation was built with.
func (s *Simulation) Options() Options { return s.opts }

// OnBounce registers an observer called once per bouncing enemy per step,
// after its velocity and colour have been updated.
func (s *Simulation) OnBounce(fn func(*entity.Entity)) { s.onBounce = fn }

// Steps returns the number of non-empty Advance calls.
func (s *Simulation) Steps() int { return s.steps }

// Bounces returns the total number of enemy bounces so far.
func (s *Simulation) Bounces() int { return s.bounces }

// Clock returns accumulated simulated seconds.
func (s *Simulation) Clock() float64 { return s.clock }

// SpawnEnemy adds one enemy with its top-left corner at (x, y).
func (s *Simulation) SpawnEnemy(x, y float64) {
	e := entity.Entity{
		X:      x,
		Y:      y,
		Width:  s.sampleSize(),
		Height: s.sampleSize(),
		SpeedX: (s.rng.Float64() - 0.5) * 2,
		SpeedY: (s.rng.Float64() - 0.5) * 2,
	}
	if len(s.opts.Palette) > 0 {
		e.Color = s.opts.Palette.Sample(s.rng)
	}
	s.Enemies = append(s.Enemies, e)
}

// ResetAt discards the whole population and respawns EnemyCount enemies at (x, y).
func (s *Simulation) ResetAt(x, y float64) {
	s.Enemies = make([]entity.Entity, 0, s.opts.EnemyCount)
	for i := 0; i < s.opts.EnemyCount; i++ {
		s.SpawnEnemy(x, y)
	}
}

func (s *Simulation) sampleSize() float64 {
	if len(s.opts.EnemySizes) == 0 {
		return 10
	}
	return s.opts.EnemySizes[s.rng.Intn(len(s.opts.EnemySizes))]
}

// Advance moves every entity by elapsed seconds. Non-positive elapsed is a no-op.
func (s *Simulation) Advance(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	s.clock += elapsed
	s.steps++

	w, h := s.opts.WorldWidth, s.opts.WorldHeight

	dx, dy := s.intent.Axis()
	s.Player.X += dx * s.opts.PlayerSpeed * elapsed
	s.Player.Y += dy * s.opts.PlayerSpeed * elapsed
	s.Player.ClampTo(w, h)

	scale := s.opts.EnemySpeedScale * elapsed
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.X += e.SpeedX * scale
		e.Y += e.SpeedY * scale

		bounced := false
		if e.X < 0 || e.Right() > w {
			e.SpeedX = -e.SpeedX
			bounced = true
		}
		if e.Y < 0 || e.Bottom() > h {
			e.SpeedY = -e.SpeedY
			bounced = true
		}
		if bounced {
			s.bounces++
			if s.opts.BounceRecolor && len(s.opts.Palette) > 0 {
				e.Color = s.opts.Palette.SampleExcluding(s.rng, e.Color)
			}
			if s.onBounce != nil {
				s.onBounce(e)
			}
		}
		e.ClampTo(w, h)
	}

	if s.opts.PlayerPulse {
		size := s.opts.PlayerSize + math.Sin(s.clock*10)
		s.Player.Width, s.Player.Height = size, size
		s.Player.ClampTo(w, h)
	}
}

// Entities visits the player first, then every enemy, in draw order.
func (s *Simulation) Entities(fn func(e *entity.Entity)) {
	fn(&s.Player)
	for i := range s.Enemies {
		fn(&s.Enemies[i])
	}
}

// RecomputeCamera centres the camera on the player for a viewport of the
// given logical size.
func (s *Simulation) RecomputeCamera(viewportW, viewportH float64) {
	cx, cy := s.Player.Center()
	s.Camera.Recompute(cx, cy, viewportW, viewportH, s.opts.WorldWidth, s.opts.WorldHeight)
}
