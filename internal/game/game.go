package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"chosenoffset.com/folio/internal/audio"
	"chosenoffset.com/folio/internal/entity"
	"chosenoffset.com/folio/internal/input"
	"chosenoffset.com/folio/internal/render"
	"chosenoffset.com/folio/internal/sim"
	"chosenoffset.com/folio/internal/view"
)

// EntitySceneConfig configures one swarm demo.
type EntitySceneConfig struct {
	Title   string
	Options sim.Options

	// Logical viewport size in world units, independent of device pixels.
	ViewportW, ViewportH float64

	// ResetOnClick respawns the swarm at the clicked world point.
	ResetOnClick bool

	Seed int64

	// Sound is optional; bounces are silent when nil.
	Sound *audio.SoundManager
	// Copy puts text on the system clipboard; C does nothing when nil.
	Copy func(string) error
}

// EntityScene hosts a simulation: it owns the simulation, the input adapter
// and the logical viewport, and drives them in frame order.
type EntityScene struct {
	cfg EntitySceneConfig

	sim      *sim.Simulation
	input    *input.Adapter
	muted    bool
	deviceW  float64
	deviceH  float64
	lastCopy string
}

// NewEntityScene creates an unmounted scene.
func NewEntityScene(cfg EntitySceneConfig) *EntityScene {
	return &EntityScene{cfg: cfg}
}

// Title implements Scene.
func (g *EntityScene) Title() string { return g.cfg.Title }

// Sim returns the running simulation, or nil when unmounted.
func (g *EntityScene) Sim() *sim.Simulation { return g.sim }

// Input returns the input adapter, or nil when unmounted.
func (g *EntityScene) Input() *input.Adapter { return g.input }

// Mount builds the simulation.
func (g *EntityScene) Mount(width, height int) {
	g.deviceW, g.deviceH = float64(width), float64(height)
	g.input = input.NewAdapter()
	g.sim = sim.New(g.cfg.Options, g.input.State(), rand.New(rand.NewSource(g.cfg.Seed)))
	if g.cfg.Sound != nil {
		g.sim.OnBounce(func(*entity.Entity) {
			if !g.muted {
				g.cfg.Sound.PlayBounce()
			}
		})
	}
	g.sim.RecomputeCamera(g.cfg.ViewportW, g.cfg.ViewportH)
	slog.Debug("entity scene mounted", "title", g.cfg.Title, "enemies", len(g.sim.Enemies))
}

// Unmount releases the simulation and silences queued sounds.
func (g *EntityScene) Unmount() {
	g.sim = nil
	g.input = nil
	if g.cfg.Sound != nil {
		g.cfg.Sound.Cleanup()
	}
}

// Viewport returns the current logical and device viewport.
func (g *EntityScene) Viewport() view.Viewport {
	return view.Viewport{
		LogicalW: g.cfg.ViewportW,
		LogicalH: g.cfg.ViewportH,
		DeviceW:  g.deviceW,
		DeviceH:  g.deviceH,
	}
}

// Transform returns the camera-to-screen transform of the current frame.
func (g *EntityScene) Transform() view.Transform {
	return view.NewTransform(g.sim.Camera, g.Viewport())
}

// Update runs one frame: input, simulation step, camera.
func (g *EntityScene) Update(im render.InputManager, dt float64) error {
	if g.sim == nil {
		return nil
	}
	g.input.Poll(im)

	if x, y, ok := g.input.Clicked(); ok && g.cfg.ResetOnClick && g.deviceW > 0 && g.deviceH > 0 {
		wx, wy := g.Transform().ScreenToWorld(float64(x), float64(y))
		g.sim.ResetAt(wx, wy)
		slog.Debug("swarm reset", "x", wx, "y", wy)
	}

	g.sim.Advance(dt)
	g.sim.RecomputeCamera(g.cfg.ViewportW, g.cfg.ViewportH)

	if im.IsKeyJustPressed(render.KeyM) {
		g.muted = !g.muted
	}
	if im.IsKeyJustPressed(render.KeyC) {
		g.copyStatus()
	}
	return nil
}

// Status summarises the simulation in one line.
func (g *EntityScene) Status() string {
	if g.sim == nil {
		return ""
	}
	p := g.sim.Player
	return fmt.Sprintf("player=(%.0f,%.0f) camera=(%.0f,%.0f) enemies=%d bounces=%d",
		p.X, p.Y, g.sim.Camera.X, g.sim.Camera.Y, len(g.sim.Enemies), g.sim.Bounces())
}

// LastCopied returns the last status line put on the clipboard.
func (g *EntityScene) LastCopied() string { return g.lastCopy }

func (g *EntityScene) copyStatus() {
	if g.cfg.Copy == nil {
		return
	}
	status := g.Status()
	if err := g.cfg.Copy(status); err != nil {
		slog.Warn("copy status to clipboard", "error", err)
		return
	}
	g.lastCopy = status
}

// Draw renders every entity through the camera.
func (g *EntityScene) Draw(dst render.Surface) {
	if g.sim == nil {
		return
	}
	w, h := dst.Size()
	g.deviceW, g.deviceH = float64(w), float64(h)
	view.Render(dst, g.sim, g.Transform())
}
