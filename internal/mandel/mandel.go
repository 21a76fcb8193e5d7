// Package mandel is the Mandelbrot viewer scene.
package mandel

import (
	"image/color"
	"math"

	"chosenoffset.com/folio/internal/palette"
	"chosenoffset.com/folio/internal/render"
)

// Escape iterates z = z^2 + c and returns a smooth iteration count, or
// maxIter if the point never escaped.
func Escape(cr, ci float64, maxIter int) float64 {
	var zr, zi float64
	for i := 0; i < maxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4 {
			// smooth colouring: fractional escape count
			logZn := math.Log(zr2+zi2) / 2
			nu := math.Log(logZn/math.Ln2) / math.Ln2
			return float64(i) + 1 - nu
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}
	return float64(maxIter)
}

// View is the visible region of the complex plane.
type View struct {
	CenterR, CenterI float64
	Span             float64 // width of the visible region along the real axis
}

// HomeView frames the whole set.
func HomeView() View {
	return View{CenterR: -0.5, CenterI: 0, Span: 3.5}
}

// ToComplex maps a device pixel to the complex plane for a surface of w x h.
func (v View) ToComplex(px, py, w, h float64) (float64, float64) {
	scale := v.Span / w
	return v.CenterR + (px-w/2)*scale, v.CenterI + (py-h/2)*scale
}

// Viewer renders the set into square cells of cell device pixels. WASD pans,
// a click zooms in twofold toward the clicked point, Space resets.
type Viewer struct {
	view    View
	maxIter int
	cell    int
	colors  palette.Palette

	grid       []color.RGBA
	gridW      int
	gridH      int
	gridFor    View
	gridSize   [2]int
	lastButton bool
}

// NewViewer creates a viewer. cell <= 0 defaults to 4 pixels.
func NewViewer(maxIter, cell int) *Viewer {
	if cell <= 0 {
		cell = 4
	}
	if maxIter <= 0 {
		maxIter = 200
	}
	return &Viewer{view: HomeView(), maxIter: maxIter, cell: cell, colors: palette.Rainbow}
}

// Title implements the scene contract.
func (m *Viewer) Title() string { return "Mandelbrot" }

// View returns the visible region.
func (m *Viewer) View() View { return m.view }

// Mount resets the view. A button held while mounting does not count as a
// click until it is released.
func (m *Viewer) Mount(width, height int) {
	m.view = HomeView()
	m.grid = nil
	m.gridSize = [2]int{}
	m.lastButton = true
}

// Unmount drops the cached grid.
func (m *Viewer) Unmount() { m.grid = nil }

// Update pans and zooms.
func (m *Viewer) Update(im render.InputManager, dt float64) error {
	pan := m.view.Span * 0.5 * dt
	if im.IsKeyPressed(render.KeyW) {
		m.view.CenterI -= pan
	}
	if im.IsKeyPressed(render.KeyS) {
		m.view.CenterI += pan
	}
	if im.IsKeyPressed(render.KeyA) {
		m.view.CenterR -= pan
	}
	if im.IsKeyPressed(render.KeyD) {
		m.view.CenterR += pan
	}
	if im.IsKeyJustPressed(render.KeySpace) {
		m.view = HomeView()
	}

	pressed := im.IsMouseButtonPressed(render.MouseButtonLeft)
	if pressed && !m.lastButton && m.gridSize[0] > 0 {
		x, y := im.CursorPosition()
		m.ZoomAt(float64(x), float64(y), float64(m.gridSize[0]), float64(m.gridSize[1]))
	}
	m.lastButton = pressed
	return nil
}

// ZoomAt halves the span and moves the centre halfway toward the pixel, so
// the point under the cursor stays put.
func (m *Viewer) ZoomAt(px, py, w, h float64) {
	cr, ci := m.view.ToComplex(px, py, w, h)
	m.view.CenterR = (m.view.CenterR + cr) / 2
	m.view.CenterI = (m.view.CenterI + ci) / 2
	m.view.Span /= 2
}

// Draw recomputes the cell grid if the view or size changed, then fills it.
func (m *Viewer) Draw(dst render.Surface) {
	w, h := dst.Size()
	if m.grid == nil || m.gridFor != m.view || m.gridSize != [2]int{w, h} {
		m.compute(w, h)
	}
	dst.Clear()
	c := float64(m.cell)
	for gy := 0; gy < m.gridH; gy++ {
		for gx := 0; gx < m.gridW; gx++ {
			dst.FillRect(float64(gx)*c, float64(gy)*c, c, c, m.grid[gy*m.gridW+gx])
		}
	}
}

func (m *Viewer) compute(w, h int) {
	m.gridW = (w + m.cell - 1) / m.cell
	m.gridH = (h + m.cell - 1) / m.cell
	m.grid = make([]color.RGBA, m.gridW*m.gridH)
	fw, fh := float64(w), float64(h)
	half := float64(m.cell) / 2
	for gy := 0; gy < m.gridH; gy++ {
		for gx := 0; gx < m.gridW; gx++ {
			cr, ci := m.view.ToComplex(float64(gx*m.cell)+half, float64(gy*m.cell)+half, fw, fh)
			m.grid[gy*m.gridW+gx] = m.shade(Escape(cr, ci, m.maxIter))
		}
	}
	m.gridFor = m.view
	m.gridSize = [2]int{w, h}
}

func (m *Viewer) shade(n float64) color.RGBA {
	if n >= float64(m.maxIter) {
		return color.RGBA{0, 0, 0, 255}
	}
	i := int(math.Floor(n))
	a := m.colors.At(i)
	b := m.colors.At(i + 1)
	t := n - math.Floor(n)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}
