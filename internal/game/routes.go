package game

import (
	"chosenoffset.com/folio/internal/audio"
	"chosenoffset.com/folio/internal/fret"
	"chosenoffset.com/folio/internal/mandel"
	"chosenoffset.com/folio/internal/render"
	"chosenoffset.com/folio/internal/rgbcanvas"
	"chosenoffset.com/folio/internal/sim"
)

// RouteDeps carries what the default route table needs to build scenes.
type RouteDeps struct {
	ViewportW, ViewportH float64

	BlueCondition sim.Options
	GameTwo       sim.Options

	MandelIterations int
	MandelCell       int

	Seed  int64
	Sound *audio.SoundManager
	Copy  func(string) error
	Text  render.TextRenderer
}

// DefaultRoutes mirrors the portfolio's route table. Digits 1..6 follow
// this order.
func DefaultRoutes(d RouteDeps) []Route {
	routes := []Route{
		{
			Path:  "/",
			Title: "Frets",
			New:   func() Scene { return fret.NewBoard(fret.StandardTuning(), d.Text) },
		},
		{
			Path:  "/bluecondition",
			Title: "Blue Condition",
			New: func() Scene {
				return NewEntityScene(EntitySceneConfig{
					Title:        "Blue Condition",
					Options:      d.BlueCondition,
					ViewportW:    d.ViewportW,
					ViewportH:    d.ViewportH,
					ResetOnClick: true,
					Seed:         d.Seed,
					Sound:        d.Sound,
					Copy:         d.Copy,
				})
			},
		},
		{
			Path:  "/gametwo",
			Title: "Game Two",
			New: func() Scene {
				return NewEntityScene(EntitySceneConfig{
					Title:     "Game Two",
					Options:   d.GameTwo,
					ViewportW: d.ViewportW,
					ViewportH: d.ViewportH,
					Seed:      d.Seed,
					Copy:      d.Copy,
				})
			},
		},
		{
			Path:  "/mbrot",
			Title: "Mandelbrot",
			New:   func() Scene { return mandel.NewViewer(d.MandelIterations, d.MandelCell) },
		},
		{
			Path:  "/supercircle",
			Title: "Supercircle",
			New:   func() Scene { return rgbcanvas.New() },
		},
	}
	menu := make([]Route, len(routes))
	copy(menu, routes)
	routes = append(routes, Route{
		Path:  HomePath,
		Title: "Home",
		New:   func() Scene { return NewHome(menu, d.Text) },
	})
	return routes
}
