package game

import (
	"errors"

	"chosenoffset.com/folio/internal/render"
)

// ErrUnknownRoute is returned when navigating to a path with no route.
var ErrUnknownRoute = errors.New("unknown route")

// Scene is one hosted demo. The manager mounts a fresh scene when its route
// is entered and unmounts it when leaving, so scenes own all their state.
type Scene interface {
	Title() string
	Mount(width, height int)
	Unmount()
	Update(im render.InputManager, dt float64) error
	Draw(dst render.Surface)
}

// Navigator is implemented by scenes that can request a route change.
type Navigator interface {
	// PendingRoute returns a requested path once, then clears it.
	PendingRoute() (path string, ok bool)
}

// Route binds a path to a scene constructor.
type Route struct {
	Path  string
	Title string
	New   func() Scene
}
