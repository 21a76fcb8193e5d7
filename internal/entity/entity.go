// Package entity defines the rectangular bodies moved by the simulation.
package entity

import (
	"image/color"
	"math"
)

// Entity is a simulated rectangular body. Position is the top-left corner in
// world coordinates; speed is a unitless factor scaled by the simulation.
type Entity struct {
	X, Y           float64
	Width, Height  float64
	SpeedX, SpeedY float64
	Color          color.RGBA
}

// Center returns the midpoint of the bounding box.
func (e *Entity) Center() (x, y float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// Right returns the x coordinate of the right edge.
func (e *Entity) Right() float64 { return e.X + e.Width }

// Bottom returns the y coordinate of the bottom edge.
func (e *Entity) Bottom() float64 { return e.Y + e.Height }

// ClampTo keeps the bounding box inside [0, worldW] x [0, worldH].
// Requires the world to be larger than the entity.
func (e *Entity) ClampTo(worldW, worldH float64) {
	e.X = clamp(e.X, 0, worldW-e.Width)
	e.Y = clamp(e.Y, 0, worldH-e.Height)
}

// Inside reports whether the position lies in [0, worldW-Width] x
// [0, worldH-Height], the range ClampTo produces.
func (e *Entity) Inside(worldW, worldH float64) bool {
	return e.X >= 0 && e.Y >= 0 && e.X <= worldW-e.Width && e.Y <= worldH-e.Height
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
