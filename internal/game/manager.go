package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"chosenoffset.com/folio/internal/render"
)

// HomePath is where Escape leads.
const HomePath = "/r"

var hudColor = color.RGBA{255, 255, 255, 255}

// Manager is the router: it owns the current scene, swaps scenes on
// navigation and measures frame time.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Routes       []Route
	InputMgr     render.InputManager
	Text         render.TextRenderer

	// MaxFrameSeconds caps the elapsed time handed to a scene in one frame.
	MaxFrameSeconds float64
	// TPS reports ticks per second for the HUD; may be nil.
	TPS func() float64

	current     Scene
	currentPath string
	now         func() time.Time
	last        time.Time
}

// NewManager creates a router with nothing mounted.
func NewManager(routes []Route, input render.InputManager, text render.TextRenderer, width, height int) *Manager {
	return &Manager{
		ScreenWidth:     width,
		ScreenHeight:    height,
		Routes:          routes,
		InputMgr:        input,
		Text:            text,
		MaxFrameSeconds: 0.1,
		now:             time.Now,
	}
}

// SetClock replaces the wall clock, for tests and headless hosts.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Current returns the mounted scene and its path.
func (m *Manager) Current() (Scene, string) { return m.current, m.currentPath }

// Navigate unmounts the current scene and mounts the one routed at path.
func (m *Manager) Navigate(path string) error {
	var route *Route
	for i := range m.Routes {
		if m.Routes[i].Path == path {
			route = &m.Routes[i]
			break
		}
	}
	if route == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	if m.current != nil {
		m.current.Unmount()
	}
	scene := route.New()
	scene.Mount(m.ScreenWidth, m.ScreenHeight)
	m.current = scene
	m.currentPath = path
	m.last = time.Time{}
	slog.Info("navigate", "route", path, "title", scene.Title())
	return nil
}

// Close unmounts the current scene.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Unmount()
		m.current = nil
		m.currentPath = ""
	}
}

// frameDelta returns seconds since the previous frame, capped. The first
// frame after a navigation is zero.
func (m *Manager) frameDelta() float64 {
	now := m.now()
	if m.last.IsZero() {
		m.last = now
		return 0
	}
	dt := now.Sub(m.last).Seconds()
	m.last = now
	if m.MaxFrameSeconds > 0 && dt > m.MaxFrameSeconds {
		dt = m.MaxFrameSeconds
	}
	return dt
}

// Update handles route keys and then updates the current scene.
func (m *Manager) Update() error {
	if path, ok := m.routeKey(); ok && path != m.currentPath {
		if err := m.Navigate(path); err != nil {
			return err
		}
	}
	if m.current == nil {
		return nil
	}

	dt := m.frameDelta()
	if err := m.current.Update(m.InputMgr, dt); err != nil {
		return err
	}
	if nav, ok := m.current.(Navigator); ok {
		if path, ok := nav.PendingRoute(); ok {
			return m.Navigate(path)
		}
	}
	return nil
}

func (m *Manager) routeKey() (string, bool) {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return HomePath, true
	}
	for i := range m.Routes {
		k, ok := render.DigitKey(i + 1)
		if !ok {
			break
		}
		if m.InputMgr.IsKeyJustPressed(k) {
			return m.Routes[i].Path, true
		}
	}
	if m.InputMgr.IsKeyJustPressed(render.KeyTab) && len(m.Routes) > 0 {
		next := 0
		for i := range m.Routes {
			if m.Routes[i].Path == m.currentPath {
				next = (i + 1) % len(m.Routes)
				break
			}
		}
		return m.Routes[next].Path, true
	}
	return "", false
}

// Draw draws the current scene and the HUD line.
func (m *Manager) Draw(screen render.Surface) {
	if m.current == nil {
		screen.Clear()
		return
	}
	m.current.Draw(screen)
	if m.Text == nil {
		return
	}
	hud := fmt.Sprintf("%s  %s", m.currentPath, m.current.Title())
	if m.TPS != nil {
		hud += fmt.Sprintf("  TPS %.0f", m.TPS())
	}
	m.Text.DrawText(screen, hud, 8, 8, hudColor)
}

// Layout reports the outside size as the screen size, so scenes draw in
// device pixels and scale their own logical viewport.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		m.ScreenWidth, m.ScreenHeight = outsideWidth, outsideHeight
	}
	return m.ScreenWidth, m.ScreenHeight
}
