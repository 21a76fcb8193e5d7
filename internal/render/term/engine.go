package term

import (
	"errors"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/folio/internal/render"
)

var titleColor = color.RGBA{200, 200, 200, 255}

// Engine runs a render.Game in the terminal at a fixed tick rate.
type Engine struct {
	screen  tcell.Screen
	input   *Input
	surface *Surface
	tps     int
	title   string
}

// NewEngine wraps an initialised screen. input is shared with the game.
func NewEngine(screen tcell.Screen, input *Input, tps int) *Engine {
	if tps <= 0 {
		tps = 30
	}
	return &Engine{screen: screen, input: input, surface: NewSurface(screen.Size()), tps: tps}
}

// SetWindowSize is a no-op; the terminal decides its size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle remembers the title; it is shown on the bottom line.
func (e *Engine) SetWindowTitle(title string) { e.title = title }

// SetWindowResizable is a no-op.
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame loops until the game returns an error or Ctrl+C is pressed.
func (e *Engine) RunGame(game render.Game) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go e.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for range ticker.C {
		if err := e.Step(game, events); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Step drains pending events and runs one update and draw.
func (e *Engine) Step(game render.Game, events <-chan tcell.Event) error {
drain:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return render.ErrQuit
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				e.screen.Sync()
			}
			e.input.HandleEvent(ev)
		default:
			break drain
		}
	}
	if e.input.Quit() {
		return render.ErrQuit
	}
	e.input.Frame()

	cols, rows := e.screen.Size()
	e.surface.Resize(cols, rows)
	game.Layout(e.surface.Size())

	if err := game.Update(); err != nil {
		return err
	}
	game.Draw(e.surface)
	if e.title != "" {
		e.surface.DrawText(e.title, 0, (rows-1)*2, titleColor)
	}
	e.surface.Show(e.screen)
	return nil
}
