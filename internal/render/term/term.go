// Package term renders scenes into a terminal with tcell. Each character cell
// shows two vertically stacked pixels using the upper half block glyph.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/folio/internal/render"
)

const halfBlock = '▀'

// Surface is a pixel buffer of cols x rows*2 device pixels.
type Surface struct {
	cols, rows int
	pix        []color.RGBA
	texts      []textItem
}

type textItem struct {
	col, row int
	s        string
	clr      color.RGBA
}

// NewSurface creates a surface for a terminal of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the buffer if the terminal size changed.
func (s *Surface) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows && s.pix != nil {
		return
	}
	s.cols, s.rows = cols, rows
	s.pix = make([]color.RGBA, cols*rows*2)
}

// Size returns the device size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.cols, s.rows * 2
}

// Clear resets every pixel to black and drops queued text.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = color.RGBA{A: 255}
	}
	s.texts = s.texts[:0]
}

// FillRect fills the pixels whose centres fall inside the rectangle.
func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	w, h := s.Size()
	x0, y0 := clampInt(round(x), 0, w), clampInt(round(y), 0, h)
	x1, y1 := clampInt(round(x+width), 0, w), clampInt(round(y+height), 0, h)
	// keep sub-pixel entities visible
	if x1 == x0 && width > 0 && x0 < w && x+width > 0 {
		x1 = x0 + 1
	}
	if y1 == y0 && height > 0 && y0 < h && y+height > 0 {
		y1 = y0 + 1
	}
	c := toRGBA(clr)
	for py := y0; py < y1; py++ {
		row := s.pix[py*w : (py+1)*w]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	w, _ := s.Size()
	return s.pix[y*w+x]
}

// DrawText queues text at the cell containing device pixel (x, y).
func (s *Surface) DrawText(str string, x, y int, clr color.Color) {
	s.texts = append(s.texts, textItem{col: x, row: y / 2, s: str, clr: toRGBA(clr)})
}

// Show writes the buffer to the screen.
func (s *Surface) Show(screen tcell.Screen) {
	w, _ := s.Size()
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pix[(row*2)*w+col]
			bottom := s.pix[(row*2+1)*w+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	for _, t := range s.texts {
		col := t.col
		for _, r := range t.s {
			if col >= s.cols || t.row >= s.rows {
				break
			}
			bg := s.pix[(t.row*2)*w+col]
			style := tcell.StyleDefault.Foreground(tcellColor(t.clr)).Background(tcellColor(bg))
			screen.SetContent(col, t.row, r, nil, style)
			col++
		}
	}
	screen.Show()
}

// TextRenderer draws text through a term Surface.
type TextRenderer struct{}

// DrawText implements render.TextRenderer. Other surfaces are ignored.
func (TextRenderer) DrawText(dst render.Surface, str string, x, y int, clr color.Color) {
	if s, ok := dst.(*Surface); ok {
		s.DrawText(str, x, y, clr)
	}
}

// MeasureText returns one pixel per rune and one cell of height.
func (TextRenderer) MeasureText(str string) (width, height int) {
	return len([]rune(str)), 2
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func toRGBA(clr color.Color) color.RGBA {
	if c, ok := clr.(color.RGBA); ok {
		return c
	}
	r, g, b, a := clr.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
