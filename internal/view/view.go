// Package view maps world-space entities onto a drawing surface.
package view

import (
	"chosenoffset.com/folio/internal/camera"
	"chosenoffset.com/folio/internal/entity"
	"chosenoffset.com/folio/internal/render"
)

// Viewport pairs the logical visible size of the world with the device
// pixel size of the surface it is drawn on.
type Viewport struct {
	LogicalW, LogicalH float64
	DeviceW, DeviceH   float64
}

// Scale returns device pixels per world unit on each axis.
func (v Viewport) Scale() (sx, sy float64) {
	return v.DeviceW / v.LogicalW, v.DeviceH / v.LogicalH
}

// Transform is the camera-to-screen mapping for one frame.
type Transform struct {
	CameraX, CameraY float64
	ScaleX, ScaleY   float64
}

// NewTransform builds the frame transform from a camera and viewport.
func NewTransform(cam camera.Camera, vp Viewport) Transform {
	sx, sy := vp.Scale()
	return Transform{CameraX: cam.X, CameraY: cam.Y, ScaleX: sx, ScaleY: sy}
}

// WorldToScreen maps a world point to device pixels.
func (t Transform) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return (wx - t.CameraX) * t.ScaleX, (wy - t.CameraY) * t.ScaleY
}

// ScreenToWorld is the inverse of WorldToScreen, used for hit-testing clicks.
func (t Transform) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx/t.ScaleX + t.CameraX, sy/t.ScaleY + t.CameraY
}

// World is what the renderer reads from a simulation.
type World interface {
	Entities(fn func(e *entity.Entity))
}

// Render clears dst and draws every entity as a filled rectangle.
// Entities entirely off-screen are skipped.
func Render(dst render.Surface, world World, t Transform) {
	dst.Clear()
	w, h := dst.Size()
	dw, dh := float64(w), float64(h)
	world.Entities(func(e *entity.Entity) {
		x, y := t.WorldToScreen(e.X, e.Y)
		ew, eh := e.Width*t.ScaleX, e.Height*t.ScaleY
		if x+ew < 0 || y+eh < 0 || x > dw || y > dh {
			return
		}
		dst.FillRect(x, y, ew, eh, e.Color)
	})
}
