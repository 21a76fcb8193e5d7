// Package input turns raw key and mouse events into the movement intent read
// by the simulation.
package input

import (
	"log/slog"

	"chosenoffset.com/folio/internal/render"
)

// State is the held-key and mouse flag set. Only Adapter writes it.
type State struct {
	keys      map[string]bool
	mouseDown bool
}

func newState() *State {
	return &State{keys: map[string]bool{"w": false, "a": false, "s": false, "d": false}}
}

// Held reports whether one of the tracked movement keys is held.
func (s *State) Held(key string) bool { return s.keys[key] }

// MouseDown reports whether the mouse button is down.
func (s *State) MouseDown() bool { return s.mouseDown }

// Axis returns the movement intent; opposite keys cancel out.
func (s *State) Axis() (dx, dy float64) {
	if s.keys["w"] {
		dy--
	}
	if s.keys["s"] {
		dy++
	}
	if s.keys["a"] {
		dx--
	}
	if s.keys["d"] {
		dx++
	}
	return dx, dy
}

// Adapter receives discrete input events and updates its State.
type Adapter struct {
	state *State

	clicked        bool
	clickX, clickY int
	lastX, lastY   int
	lastButton     bool
	polled         bool
}

// NewAdapter creates an adapter with every flag released.
func NewAdapter() *Adapter {
	return &Adapter{state: newState()}
}

// State returns the read-only view handed to the simulation.
func (a *Adapter) State() *State { return a.state }

// KeyDown sets a tracked key. Unknown keys are ignored.
func (a *Adapter) KeyDown(key string) {
	if _, ok := a.state.keys[key]; ok {
		a.state.keys[key] = true
	}
}

// KeyUp releases a tracked key. Unknown keys are ignored.
func (a *Adapter) KeyUp(key string) {
	if _, ok := a.state.keys[key]; ok {
		a.state.keys[key] = false
	}
}

// MouseDown marks the button held and records a click at (x, y).
func (a *Adapter) MouseDown(x, y int) {
	a.state.mouseDown = true
	a.clicked = true
	a.clickX, a.clickY = x, y
}

// MouseUp releases the button.
func (a *Adapter) MouseUp(x, y int) {
	a.state.mouseDown = false
}

// MouseMove is a hook for dragging; it has no effect on state yet.
func (a *Adapter) MouseMove(x, y int) {
	if a.state.mouseDown {
		slog.Debug("drag", "x", x, "y", y)
	}
}

// Clicked returns the position of the last mouse-down since the previous
// call, if any, and clears it.
func (a *Adapter) Clicked() (x, y int, ok bool) {
	if !a.clicked {
		return 0, 0, false
	}
	a.clicked = false
	return a.clickX, a.clickY, true
}

// ReleaseAll clears every flag, e.g. when the hosting view loses focus.
func (a *Adapter) ReleaseAll() {
	for k := range a.state.keys {
		a.state.keys[k] = false
	}
	a.state.mouseDown = false
	a.clicked = false
}

// Poll converts the current state of a polled backend into events. The
// first call records the mouse baseline without emitting button events.
func (a *Adapter) Poll(im render.InputManager) {
	for _, k := range render.AllKeys {
		if im.IsKeyJustPressed(k) {
			a.KeyDown(k.Name())
		}
		if im.IsKeyJustReleased(k) {
			a.KeyUp(k.Name())
		}
	}

	x, y := im.CursorPosition()
	pressed := im.IsMouseButtonPressed(render.MouseButtonLeft)
	switch {
	case !a.polled:
		// the first poll only sets the baseline; a button already held
		// belongs to whatever opened this scene
	case pressed && !a.lastButton:
		a.MouseDown(x, y)
	case !pressed && a.lastButton:
		a.MouseUp(x, y)
	}
	a.lastButton = pressed

	if a.polled && (x != a.lastX || y != a.lastY) {
		a.MouseMove(x, y)
	}
	a.lastX, a.lastY = x, y
	a.polled = true
}
