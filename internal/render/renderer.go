package render

import (
	"image/color"
)

// Surface is an immediate-mode 2D drawing target. It abstracts the underlying
// graphics backend so scenes can be drawn (and tested) without a window.
type Surface interface {
	// Size returns the surface size in device pixels.
	Size() (width, height int)

	// Clear clears the surface to transparent (or the backend's background).
	Clear()

	// FillRect fills the axis-aligned rectangle at (x, y) with the given color.
	FillRect(x, y, width, height float64, clr color.Color)
}

// TextRenderer draws short UI strings onto a surface.
type TextRenderer interface {
	DrawText(dst Surface, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// InputManager handles input from the user (keyboard, mouse, etc).
// Backends are polled once per frame.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	IsKeyJustReleased(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demos listen to
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyC
	KeyM
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyTab
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
)

// AllKeys lists every key a backend must report on.
var AllKeys = []Key{
	KeyW, KeyA, KeyS, KeyD, KeyC, KeyM,
	KeyUp, KeyDown, KeyLeft, KeyRight,
	KeySpace, KeyEscape, KeyTab,
	Key1, Key2, Key3, Key4, Key5, Key6,
}

var keyNames = map[Key]string{
	KeyW:      "w",
	KeyA:      "a",
	KeyS:      "s",
	KeyD:      "d",
	KeyC:      "c",
	KeyM:      "m",
	KeyUp:     "ArrowUp",
	KeyDown:   "ArrowDown",
	KeyLeft:   "ArrowLeft",
	KeyRight:  "ArrowRight",
	KeySpace:  " ",
	KeyEscape: "Escape",
	KeyTab:    "Tab",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	Key5:      "5",
	Key6:      "6",
}

// Name returns the key identifier carried by key events ("w", "Escape", ...).
func (k Key) Name() string {
	return keyNames[k]
}

// DigitKey returns the key for digit n (1..6).
func DigitKey(n int) (Key, bool) {
	if n < 1 || n > 6 {
		return 0, false
	}
	return Key1 + Key(n-1), true
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Surface)

	// Layout accepts the outside size (e.g., window size) and returns the screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to stop the engine cleanly.
var ErrQuit = errQuit{}

type errQuit struct{}

func (errQuit) Error() string { return "quit" }
