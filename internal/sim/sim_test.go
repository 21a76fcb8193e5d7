package sim

import (
	"image/color"
	"math/rand"
	"testing"

	"chosenoffset.com/folio/internal/entity"
	"chosenoffset.com/folio/internal/palette"
)

type heldIntent struct{ dx, dy float64 }

func (h heldIntent) Axis() (float64, float64) { return h.dx, h.dy }

func emptyWorld() Options {
	o := DefaultOptions()
	o.SpawnOnStart = false
	o.PlayerPulse = false
	return o
}

func TestAdvanceZeroIsNoOp(t *testing.T) {
	s := New(emptyWorld(), heldIntent{}, rand.New(rand.NewSource(1)))
	before := s.Player

	s.Advance(0)

	if s.Player != before {
		t.Errorf("Expected player unchanged, got %+v (was %+v)", s.Player, before)
	}
	if s.Steps() != 0 {
		t.Errorf("Expected 0 steps, got %d", s.Steps())
	}
}

func TestAdvanceNegativeIsNoOp(t *testing.T) {
	s := New(emptyWorld(), heldIntent{dx: 1}, rand.New(rand.NewSource(1)))
	s.SpawnEnemy(100, 100)
	p, e := s.Player, s.Enemies[0]

	s.Advance(-0.5)

	if s.Player != p || s.Enemies[0] != e {
		t.Error("Expected negative elapsed time to leave every entity untouched")
	}
}

func TestEnemyBounceScenario(t *testing.T) {
	o := emptyWorld()
	o.BounceRecolor = false
	s := New(o, nil, rand.New(rand.NewSource(1)))
	s.Enemies = []entity.Entity{{X: 9995, Y: 5000, Width: 10, Height: 10, SpeedX: 1, SpeedY: 0}}

	s.Advance(0.01)

	e := s.Enemies[0]
	if e.SpeedX != -1 || e.SpeedY != 0 {
		t.Errorf("Expected velocity (-1,0), got (%v,%v)", e.SpeedX, e.SpeedY)
	}
	if e.X != 9990 {
		t.Errorf("Expected x clamped to 9990, got %v", e.X)
	}
	if e.Y != 5000 {
		t.Errorf("Expected y unchanged at 5000, got %v", e.Y)
	}
	if s.Bounces() != 1 {
		t.Errorf("Expected 1 bounce, got %d", s.Bounces())
	}
}

func TestPlayerMovesWithIntent(t *testing.T) {
	s := New(emptyWorld(), heldIntent{dx: 1, dy: -1}, rand.New(rand.NewSource(1)))
	x0, y0 := s.Player.X, s.Player.Y

	s.Advance(0.1)

	if s.Player.X != x0+150 {
		t.Errorf("Expected x %v, got %v", x0+150, s.Player.X)
	}
	if s.Player.Y != y0-150 {
		t.Errorf("Expected y %v, got %v", y0-150, s.Player.Y)
	}
}

func TestPlayerStaysInsideWorld(t *testing.T) {
	intents := []heldIntent{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	steps := []float64{0, 0.001, 0.016, 0.5, 3, 100}

	for _, in := range intents {
		for _, dt := range steps {
			o := DefaultOptions()
			o.SpawnOnStart = false
			s := New(o, in, rand.New(rand.NewSource(7)))
			for i := 0; i < 20; i++ {
				s.Advance(dt)
				p := s.Player
				if p.X < 0 || p.X > o.WorldWidth-p.Width || p.Y < 0 || p.Y > o.WorldHeight-p.Height {
					t.Fatalf("intent %+v dt %v: player escaped to (%v,%v) size %v", in, dt, p.X, p.Y, p.Width)
				}
			}
		}
	}
}

func TestEnemiesStayInsideWorld(t *testing.T) {
	o := DefaultOptions()
	o.EnemyCount = 500
	s := New(o, nil, rand.New(rand.NewSource(3)))
	// max speed factor is 1, so any dt below world/scale cannot tunnel
	dt := 1.0 / 30
	for i := 0; i < 2000; i++ {
		s.Advance(dt)
		for j := range s.Enemies {
			e := &s.Enemies[j]
			if !e.Inside(o.WorldWidth, o.WorldHeight) {
				t.Fatalf("step %d: enemy %d outside world at (%v,%v) size %vx%v", i, j, e.X, e.Y, e.Width, e.Height)
			}
		}
	}
	if s.Bounces() == 0 {
		t.Error("Expected some bounces over 2000 steps")
	}
}

func TestNoSecondBounceWhenMovingAway(t *testing.T) {
	o := emptyWorld()
	s := New(o, nil, rand.New(rand.NewSource(1)))
	s.Enemies = []entity.Entity{{X: 9995, Y: 5000, Width: 10, Height: 10, SpeedX: 1, Color: palette.Blue[0]}}

	s.Advance(0.01)
	if s.Bounces() != 1 {
		t.Fatalf("Expected first step to bounce, got %d bounces", s.Bounces())
	}
	s.Advance(0.01)
	if s.Bounces() != 1 {
		t.Errorf("Expected no bounce while moving away, got %d bounces", s.Bounces())
	}
	if s.Enemies[0].SpeedX != -1 {
		t.Errorf("Expected velocity to stay -1, got %v", s.Enemies[0].SpeedX)
	}
	if s.Enemies[0].X != 9980 {
		t.Errorf("Expected x 9980, got %v", s.Enemies[0].X)
	}
}

func TestBounceChangesColor(t *testing.T) {
	o := emptyWorld()
	s := New(o, nil, rand.New(rand.NewSource(11)))
	for trial := 0; trial < 200; trial++ {
		start := o.Palette[trial%len(o.Palette)]
		s.Enemies = []entity.Entity{{X: 1, Y: 1, Width: 10, Height: 10, SpeedX: -1, SpeedY: -1, Color: start}}
		s.Advance(0.01)
		if s.Enemies[0].Color == start {
			t.Fatalf("trial %d: Expected color to change from %v after bounce", trial, start)
		}
	}
}

func TestBounceRecolorOff(t *testing.T) {
	o := GameTwoOptions()
	s := New(o, nil, rand.New(rand.NewSource(1)))
	c := color.RGBA{1, 2, 3, 255}
	s.Enemies = []entity.Entity{{X: 0, Y: 0, Width: 10, Height: 10, SpeedX: -1, Color: c}}

	s.Advance(0.01)

	if s.Enemies[0].Color != c {
		t.Errorf("Expected color kept with recolor off, got %v", s.Enemies[0].Color)
	}
	if s.Enemies[0].SpeedX != 1 {
		t.Errorf("Expected reflection regardless of recolor, got %v", s.Enemies[0].SpeedX)
	}
}

func TestBounceObserver(t *testing.T) {
	s := New(emptyWorld(), nil, rand.New(rand.NewSource(1)))
	s.Enemies = []entity.Entity{
		{X: 0, Y: 50, Width: 10, Height: 10, SpeedX: -1},
		{X: 500, Y: 500, Width: 10, Height: 10, SpeedX: 0.1},
	}
	var seen []*entity.Entity
	s.OnBounce(func(e *entity.Entity) { seen = append(seen, e) })

	s.Advance(0.01)

	if len(seen) != 1 || seen[0] != &s.Enemies[0] {
		t.Errorf("Expected exactly the first enemy reported, got %d reports", len(seen))
	}
}

func TestResetAtRespawnsPopulation(t *testing.T) {
	o := DefaultOptions()
	o.EnemyCount = 50
	s := New(o, nil, rand.New(rand.NewSource(5)))
	if len(s.Enemies) != 50 {
		t.Fatalf("Expected 50 enemies at start, got %d", len(s.Enemies))
	}
	s.Advance(0.5)

	s.ResetAt(1234, 4321)

	if len(s.Enemies) != 50 {
		t.Fatalf("Expected population size kept at 50, got %d", len(s.Enemies))
	}
	for i, e := range s.Enemies {
		if e.X != 1234 || e.Y != 4321 {
			t.Errorf("enemy %d: Expected spawn at (1234,4321), got (%v,%v)", i, e.X, e.Y)
		}
		if e.SpeedX < -1 || e.SpeedX >= 1 || e.SpeedY < -1 || e.SpeedY >= 1 {
			t.Errorf("enemy %d: velocity out of range (%v,%v)", i, e.SpeedX, e.SpeedY)
		}
	}
}

func TestGameTwoStartsEmpty(t *testing.T) {
	s := New(GameTwoOptions(), nil, nil)
	if len(s.Enemies) != 0 {
		t.Errorf("Expected no enemies, got %d", len(s.Enemies))
	}
	if s.Player.X != 5000 || s.Player.Y != 5000 {
		t.Errorf("Expected player at world centre, got (%v,%v)", s.Player.X, s.Player.Y)
	}
}

func TestPlayerPulse(t *testing.T) {
	o := emptyWorld()
	o.PlayerPulse = true
	s := New(o, nil, rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		s.Advance(0.016)
		if s.Player.Width < 29 || s.Player.Width > 31 {
			t.Fatalf("Expected pulse within 30±1, got %v", s.Player.Width)
		}
	}
}

func TestMaxPlayerSize(t *testing.T) {
	if got := DefaultOptions().MaxPlayerSize(); got != 31 {
		t.Errorf("Expected the pulsing player to reach 31, got %v", got)
	}
	if got := GameTwoOptions().MaxPlayerSize(); got != 30 {
		t.Errorf("Expected a steady player of 30, got %v", got)
	}
}

func TestRecomputeCameraFollowsPlayer(t *testing.T) {
	s := New(emptyWorld(), nil, nil)
	s.RecomputeCamera(1600, 1000)

	cx, cy := s.Player.Center()
	if s.Camera.X != cx-800 || s.Camera.Y != cy-500 {
		t.Errorf("Expected camera centred on player, got (%v,%v)", s.Camera.X, s.Camera.Y)
	}
}
