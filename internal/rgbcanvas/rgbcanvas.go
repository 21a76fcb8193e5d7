// Package rgbcanvas is the animated colour-ring scene.
package rgbcanvas

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/folio/internal/render"
)

// Canvas draws a grid whose cells take their hue from the angle around the
// centre, rotating over time, and their brightness from the distance to a
// ring of radius Radius.
type Canvas struct {
	Cell   int
	Radius float64 // fraction of the shorter side
	Speed  float64 // revolutions per second

	t      float64
	paused bool
}

// New creates a canvas with 16-pixel cells.
func New() *Canvas {
	return &Canvas{Cell: 16, Radius: 0.35, Speed: 0.1}
}

// Title implements the scene contract.
func (c *Canvas) Title() string { return "Supercircle" }

// Mount restarts the animation.
func (c *Canvas) Mount(width, height int) { c.t = 0 }

// Unmount has nothing to release.
func (c *Canvas) Unmount() {}

// Update advances the animation; Space pauses it.
func (c *Canvas) Update(im render.InputManager, dt float64) error {
	if im.IsKeyJustPressed(render.KeySpace) {
		c.paused = !c.paused
	}
	if !c.paused && dt > 0 {
		c.t += dt
	}
	return nil
}

// ColorAt returns the colour of the cell centred at (x, y).
func (c *Canvas) ColorAt(x, y, w, h float64) color.RGBA {
	dx, dy := x-w/2, y-h/2
	angle := math.Atan2(dy, dx)/(2*math.Pi) + c.t*c.Speed
	hue := angle - math.Floor(angle)
	ring := c.Radius * math.Min(w, h)
	dist := math.Abs(math.Hypot(dx, dy) - ring)
	v := math.Max(0, 1-dist/(ring*0.6+1))
	r, g, b := colorful.Hsv(hue*360, 1, v).RGB255()
	return color.RGBA{r, g, b, 255}
}

// Draw fills the whole surface cell by cell.
func (c *Canvas) Draw(dst render.Surface) {
	w, h := dst.Size()
	fw, fh := float64(w), float64(h)
	cell := float64(c.Cell)
	dst.Clear()
	for y := 0.0; y < fh; y += cell {
		for x := 0.0; x < fw; x += cell {
			dst.FillRect(x, y, cell, cell, c.ColorAt(x+cell/2, y+cell/2, fw, fh))
		}
	}
}
