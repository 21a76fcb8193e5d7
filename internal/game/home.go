package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/folio/internal/render"
)

const (
	homeLeft     = 50
	homeTop      = 100
	homeRowW     = 360
	homeRowH     = 25
	homeRowGap   = 15
	homeTextPadX = 8
	homeTextPadY = 6
)

var (
	homeBackground = color.RGBA{20, 20, 40, 255}
	homeRow        = color.RGBA{40, 40, 70, 255}
	homeRowActive  = color.RGBA{70, 70, 130, 255}
	homeText       = color.RGBA{255, 255, 255, 255}
)

// Home lists the routes and navigates on click or Space.
type Home struct {
	entries        []Route
	text           render.TextRenderer
	selected       int
	pending        string
	lastMouseClick bool
}

// NewHome creates the route menu. text may be nil.
func NewHome(entries []Route, text render.TextRenderer) *Home {
	return &Home{entries: entries, text: text}
}

// Title implements Scene.
func (h *Home) Title() string { return "Home" }

// Mount resets the selection. A button held while mounting does not count
// as a click until it is released.
func (h *Home) Mount(width, height int) {
	h.selected = 0
	h.pending = ""
	h.lastMouseClick = true
}

// Unmount has nothing to release.
func (h *Home) Unmount() {}

// PendingRoute implements Navigator.
func (h *Home) PendingRoute() (string, bool) {
	if h.pending == "" {
		return "", false
	}
	p := h.pending
	h.pending = ""
	return p, true
}

// Update moves the selection with the arrows, opens with Space, or opens
// the clicked row.
func (h *Home) Update(im render.InputManager, dt float64) error {
	if len(h.entries) == 0 {
		return nil
	}
	if im.IsKeyJustPressed(render.KeyDown) {
		h.selected = (h.selected + 1) % len(h.entries)
	}
	if im.IsKeyJustPressed(render.KeyUp) {
		h.selected = (h.selected + len(h.entries) - 1) % len(h.entries)
	}
	if im.IsKeyJustPressed(render.KeySpace) {
		h.pending = h.entries[h.selected].Path
	}

	mouseX, mouseY := im.CursorPosition()
	mousePressed := im.IsMouseButtonPressed(render.MouseButtonLeft)
	mouseClicked := mousePressed && !h.lastMouseClick
	h.lastMouseClick = mousePressed
	if mouseClicked {
		if i, ok := h.rowAt(mouseX, mouseY); ok {
			h.selected = i
			h.pending = h.entries[i].Path
		}
	}
	return nil
}

func (h *Home) rowY(i int) int {
	return homeTop + i*(homeRowH+homeRowGap)
}

func (h *Home) rowAt(x, y int) (int, bool) {
	for i := range h.entries {
		r := rect{x: homeLeft, y: h.rowY(i), w: homeRowW, h: homeRowH}
		if pointInRect(x, y, r) {
			return i, true
		}
	}
	return 0, false
}

// Draw renders the route list.
func (h *Home) Draw(dst render.Surface) {
	w, hh := dst.Size()
	dst.Clear()
	dst.FillRect(0, 0, float64(w), float64(hh), homeBackground)
	for i, e := range h.entries {
		clr := homeRow
		if i == h.selected {
			clr = homeRowActive
		}
		y := h.rowY(i)
		dst.FillRect(homeLeft, float64(y), homeRowW, homeRowH, clr)
		if h.text != nil {
			label := fmt.Sprintf("%d  %-16s %s", i+1, e.Title, e.Path)
			h.text.DrawText(dst, label, homeLeft+homeTextPadX, y+homeTextPadY, homeText)
		}
	}
}

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}
