// Package rendertest provides in-memory render collaborators for headless tests.
package rendertest

import (
	"image/color"

	"chosenoffset.com/folio/internal/render"
)

// Rect is one recorded FillRect call.
type Rect struct {
	X, Y, W, H float64
	Color      color.Color
}

// Surface records draw calls.
type Surface struct {
	Width, Height int
	Clears        int
	Rects         []Rect
	Texts         []string
}

// NewSurface creates a recorder of the given device size.
func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height}
}

// Size implements render.Surface.
func (s *Surface) Size() (int, int) { return s.Width, s.Height }

// Clear implements render.Surface; it also forgets earlier rects.
func (s *Surface) Clear() {
	s.Clears++
	s.Rects = s.Rects[:0]
	s.Texts = s.Texts[:0]
}

// FillRect implements render.Surface.
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	s.Rects = append(s.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr})
}

// Text records strings drawn on a Surface.
type Text struct{}

// DrawText implements render.TextRenderer.
func (Text) DrawText(dst render.Surface, s string, x, y int, clr color.Color) {
	if rs, ok := dst.(*Surface); ok {
		rs.Texts = append(rs.Texts, s)
	}
}

// MeasureText implements render.TextRenderer.
func (Text) MeasureText(s string) (int, int) { return len(s) * 6, 13 }

// Input is a scriptable render.InputManager. Press/Release take effect as
// edges on the next Frame call.
type Input struct {
	held, prev map[render.Key]bool
	X, Y       int
	Button     bool
}

// NewInput creates an input with nothing held.
func NewInput() *Input {
	return &Input{held: map[render.Key]bool{}, prev: map[render.Key]bool{}}
}

// Press holds a key.
func (in *Input) Press(k render.Key) { in.held[k] = true }

// Release lets go of a key.
func (in *Input) Release(k render.Key) { delete(in.held, k) }

// Frame ends the current frame so just-pressed/released edges clear.
func (in *Input) Frame() {
	in.prev = map[render.Key]bool{}
	for k, v := range in.held {
		in.prev[k] = v
	}
}

// IsKeyPressed implements render.InputManager.
func (in *Input) IsKeyPressed(k render.Key) bool { return in.held[k] }

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(k render.Key) bool { return in.held[k] && !in.prev[k] }

// IsKeyJustReleased implements render.InputManager.
func (in *Input) IsKeyJustReleased(k render.Key) bool { return !in.held[k] && in.prev[k] }

// CursorPosition implements render.InputManager.
func (in *Input) CursorPosition() (int, int) { return in.X, in.Y }

// IsMouseButtonPressed implements render.InputManager.
func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.Button
}
