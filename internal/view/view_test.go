package view

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/folio/internal/camera"
	"chosenoffset.com/folio/internal/entity"
	"chosenoffset.com/folio/internal/render/rendertest"
)

type entityList []entity.Entity

func (l entityList) Entities(fn func(*entity.Entity)) {
	for i := range l {
		fn(&l[i])
	}
}

func TestScale(t *testing.T) {
	vp := Viewport{LogicalW: 1600, LogicalH: 1000, DeviceW: 800, DeviceH: 1000}
	sx, sy := vp.Scale()
	if sx != 0.5 || sy != 1 {
		t.Errorf("Expected scale (0.5,1), got (%v,%v)", sx, sy)
	}
}

func TestScreenToWorldInvertsWorldToScreen(t *testing.T) {
	transforms := []Transform{
		NewTransform(camera.Camera{X: 0, Y: 0}, Viewport{1600, 1000, 1600, 1000}),
		NewTransform(camera.Camera{X: 4200, Y: 4500}, Viewport{1600, 1000, 1280, 800}),
		NewTransform(camera.Camera{X: -300, Y: 12.5}, Viewport{1600, 1000, 333, 777}),
	}
	points := [][2]float64{{0, 0}, {4200, 4500}, {9999.5, 0.25}, {5015, 5015}}

	for i, tr := range transforms {
		for _, p := range points {
			sx, sy := tr.WorldToScreen(p[0], p[1])
			wx, wy := tr.ScreenToWorld(sx, sy)
			if math.Abs(wx-p[0]) > 1e-9 || math.Abs(wy-p[1]) > 1e-9 {
				t.Errorf("transform %d: Expected %v back, got (%v,%v)", i, p, wx, wy)
			}
		}
	}
}

func TestWorldToScreenInvertsScreenToWorld(t *testing.T) {
	tr := NewTransform(camera.Camera{X: 4200, Y: 4500}, Viewport{1600, 1000, 1280, 800})
	for sx := 0.0; sx <= 1280; sx += 97 {
		for sy := 0.0; sy <= 800; sy += 61 {
			wx, wy := tr.ScreenToWorld(sx, sy)
			gx, gy := tr.WorldToScreen(wx, wy)
			if math.Abs(gx-sx) > 1e-9 || math.Abs(gy-sy) > 1e-9 {
				t.Fatalf("screen (%v,%v): got (%v,%v) back", sx, sy, gx, gy)
			}
		}
	}
}

func TestRenderDrawsPlayerFirstAndCulls(t *testing.T) {
	player := color.RGBA{0, 0, 255, 255}
	world := entityList{
		{X: 5000, Y: 5000, Width: 30, Height: 30, Color: player},
		{X: 4300, Y: 4600, Width: 10, Height: 10, Color: color.RGBA{1, 1, 1, 255}},
		{X: 100, Y: 100, Width: 50, Height: 50, Color: color.RGBA{2, 2, 2, 255}},
		{X: 4190, Y: 4490, Width: 25, Height: 25, Color: color.RGBA{3, 3, 3, 255}},
	}
	dst := rendertest.NewSurface(800, 500)
	tr := NewTransform(camera.Camera{X: 4200, Y: 4500}, Viewport{1600, 1000, 800, 500})

	Render(dst, world, tr)

	if dst.Clears != 1 {
		t.Errorf("Expected one clear, got %d", dst.Clears)
	}
	if len(dst.Rects) != 3 {
		t.Fatalf("Expected 3 visible rects, got %d", len(dst.Rects))
	}
	first := dst.Rects[0]
	if first.Color != player {
		t.Errorf("Expected the player drawn first, got %v", first.Color)
	}
	if first.X != 400 || first.Y != 250 || first.W != 15 || first.H != 15 {
		t.Errorf("Expected player at (400,250) 15x15, got %+v", first)
	}
	partial := dst.Rects[2]
	if partial.X != -5 || partial.Y != -5 {
		t.Errorf("Expected partially visible enemy at (-5,-5), got (%v,%v)", partial.X, partial.Y)
	}
}
