package sim

import (
	"image/color"

	"chosenoffset.com/folio/internal/palette"
)

// Options parametrises a simulation. The two swarm demos differ only here.
type Options struct {
	WorldWidth  float64
	WorldHeight float64

	// EnemyCount is the population size used by spawn-on-start and ResetAt.
	EnemyCount   int
	SpawnOnStart bool

	PlayerSize  float64
	PlayerSpeed float64 // world units per second
	PlayerColor color.RGBA

	// EnemySpeedScale multiplies the stored per-enemy velocity factor.
	EnemySpeedScale float64
	EnemySizes      []float64
	Palette         palette.Palette

	// BounceRecolor picks a new palette colour whenever an enemy bounces.
	BounceRecolor bool
	// PlayerPulse oscillates the player size by one unit.
	PlayerPulse bool
}

// MaxPlayerSize is the largest size the player reaches, including the pulse.
func (o Options) MaxPlayerSize() float64 {
	if o.PlayerPulse {
		return o.PlayerSize + 1
	}
	return o.PlayerSize
}

// DefaultOptions returns the bouncing-swarm setup.
func DefaultOptions() Options {
	return Options{
		WorldWidth:      10000,
		WorldHeight:     10000,
		EnemyCount:      5000,
		SpawnOnStart:    true,
		PlayerSize:      30,
		PlayerSpeed:     1500,
		PlayerColor:     color.RGBA{0, 0, 0xff, 0xff},
		EnemySpeedScale: 1000,
		EnemySizes:      []float64{5, 10, 25, 50},
		Palette:         palette.Blue,
		BounceRecolor:   true,
		PlayerPulse:     true,
	}
}

// GameTwoOptions returns the bare movement sandbox: a player in an empty
// world, no recolouring, no pulse.
func GameTwoOptions() Options {
	o := DefaultOptions()
	o.SpawnOnStart = false
	o.BounceRecolor = false
	o.PlayerPulse = false
	return o
}
