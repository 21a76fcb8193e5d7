// Package app wires configuration, audio and the route table into a
// router for the command-line hosts.
package app

import (
	"log/slog"
	"math/rand"

	"github.com/atotto/clipboard"

	"chosenoffset.com/folio/internal/audio"
	"chosenoffset.com/folio/internal/config"
	"chosenoffset.com/folio/internal/game"
	"chosenoffset.com/folio/internal/render"
)

// NewManager builds the router for cfg and navigates to its start route.
// route overrides cfg.Route when non-empty.
func NewManager(cfg *config.Config, input render.InputManager, text render.TextRenderer, width, height int, route string) (*game.Manager, error) {
	var sound *audio.SoundManager
	if cfg.Audio.BounceSFX {
		sound = audio.NewSoundManager(audio.Config{
			MinInterval: cfg.Audio.MinInterval(),
			MaxVoices:   cfg.Audio.MaxVoices,
		}, rand.New(rand.NewSource(cfg.Seed)))
	}

	var copyFn func(string) error
	if !clipboard.Unsupported {
		copyFn = clipboard.WriteAll
	} else {
		slog.Warn("clipboard unsupported on this system; status copy disabled")
	}

	routes := game.DefaultRoutes(game.RouteDeps{
		ViewportW:        cfg.Viewport.Width,
		ViewportH:        cfg.Viewport.Height,
		BlueCondition:    cfg.BlueCondition(),
		GameTwo:          cfg.GameTwo(),
		MandelIterations: cfg.Mandel.Iterations,
		MandelCell:       cfg.Mandel.Cell,
		Seed:             cfg.Seed,
		Sound:            sound,
		Copy:             copyFn,
		Text:             text,
	})

	m := game.NewManager(routes, input, text, width, height)
	m.MaxFrameSeconds = cfg.MaxFrameSeconds

	if route == "" {
		route = cfg.Route
	}
	if err := m.Navigate(route); err != nil {
		return nil, err
	}
	return m, nil
}
