// Package camera derives the viewport offset that follows the player.
package camera

// Camera tracks the viewport position for scrolling the world.
type Camera struct {
	X, Y float64 // top-left corner of the viewport in world coords
}

// Recompute centres the camera on (centerX, centerY) and clamps it so the
// viewport stays inside the world. On an axis where the viewport is larger
// than the world, the world is centred instead.
func (c *Camera) Recompute(centerX, centerY, viewportW, viewportH, worldW, worldH float64) {
	c.X = axis(centerX, viewportW, worldW)
	c.Y = axis(centerY, viewportH, worldH)
}

func axis(center, viewport, world float64) float64 {
	if viewport > world {
		return (world - viewport) / 2
	}
	off := center - viewport/2
	if off < 0 {
		off = 0
	}
	if off > world-viewport {
		off = world - viewport
	}
	return off
}
