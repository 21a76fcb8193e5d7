package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/folio/internal/render"
)

// DefaultHold is how long a key counts as held after its last press or
// auto-repeat. Terminals never report key releases, and the first auto-repeat
// arrives 250-600ms after the press, so a shorter window makes a held key
// stutter. The cost is that a tapped key stays held for the whole window.
const DefaultHold = 500 * time.Millisecond

// Input implements render.InputManager from tcell events. Events are fed with
// HandleEvent; Frame latches the per-frame edges.
type Input struct {
	hold time.Duration
	now  func() time.Time

	lastSeen map[render.Key]time.Time
	held     map[render.Key]bool
	prev     map[render.Key]bool

	cursorX, cursorY int
	button           bool
	quit             bool
}

// NewInput creates an input manager using the given hold window.
func NewInput(hold time.Duration) *Input {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Input{
		hold:     hold,
		now:      time.Now,
		lastSeen: make(map[render.Key]time.Time),
		held:     make(map[render.Key]bool),
		prev:     make(map[render.Key]bool),
	}
}

var runeKeys = map[rune]render.Key{
	'w': render.KeyW, 'W': render.KeyW,
	'a': render.KeyA, 'A': render.KeyA,
	's': render.KeyS, 'S': render.KeyS,
	'd': render.KeyD, 'D': render.KeyD,
	'c': render.KeyC, 'C': render.KeyC,
	'm': render.KeyM, 'M': render.KeyM,
	' ': render.KeySpace,
	'1': render.Key1, '2': render.Key2, '3': render.Key3,
	'4': render.Key4, '5': render.Key5, '6': render.Key6,
}

var specialKeys = map[tcell.Key]render.Key{
	tcell.KeyUp:     render.KeyUp,
	tcell.KeyDown:   render.KeyDown,
	tcell.KeyLeft:   render.KeyLeft,
	tcell.KeyRight:  render.KeyRight,
	tcell.KeyEscape: render.KeyEscape,
	tcell.KeyTab:    render.KeyTab,
}

// HandleEvent records one tcell event.
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			in.quit = true
			return
		}
		var k render.Key
		var ok bool
		if ev.Key() == tcell.KeyRune {
			k, ok = runeKeys[ev.Rune()]
		} else {
			k, ok = specialKeys[ev.Key()]
		}
		if ok {
			in.lastSeen[k] = in.now()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.cursorX, in.cursorY = x, y*2
		in.button = ev.Buttons()&tcell.Button1 != 0
	}
}

// Frame recomputes which keys are held; call once per frame after
// draining events.
func (in *Input) Frame() {
	in.prev, in.held = in.held, in.prev
	for k := range in.held {
		delete(in.held, k)
	}
	now := in.now()
	for k, t := range in.lastSeen {
		if now.Sub(t) <= in.hold {
			in.held[k] = true
		}
	}
}

// Quit reports whether Ctrl+C was pressed.
func (in *Input) Quit() bool { return in.quit }

// IsKeyPressed implements render.InputManager.
func (in *Input) IsKeyPressed(key render.Key) bool { return in.held[key] }

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.held[key] && !in.prev[key] }

// IsKeyJustReleased implements render.InputManager.
func (in *Input) IsKeyJustReleased(key render.Key) bool { return !in.held[key] && in.prev[key] }

// CursorPosition returns the cursor in device pixels.
func (in *Input) CursorPosition() (x, y int) { return in.cursorX, in.cursorY }

// IsMouseButtonPressed implements render.InputManager. Only the left
// button is tracked.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.button
}
