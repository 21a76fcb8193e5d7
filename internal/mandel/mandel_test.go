package mandel

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/folio/internal/render"
	"chosenoffset.com/folio/internal/render/rendertest"
)

func TestEscape(t *testing.T) {
	if got := Escape(0, 0, 100); got != 100 {
		t.Errorf("Expected the origin to stay bounded, got %v", got)
	}
	if got := Escape(-1, 0, 100); got != 100 {
		t.Errorf("Expected -1 to stay bounded, got %v", got)
	}
	if got := Escape(2, 2, 100); got >= 5 {
		t.Errorf("Expected 2+2i to escape quickly, got %v", got)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	v := NewViewer(50, 4)
	const w, h = 800.0, 600.0
	px, py := 123.0, 456.0
	br, bi := v.View().ToComplex(px, py, w, h)

	v.ZoomAt(px, py, w, h)

	ar, ai := v.View().ToComplex(px, py, w, h)
	if math.Abs(ar-br) > 1e-12 || math.Abs(ai-bi) > 1e-12 {
		t.Errorf("Expected (%v,%v) under the cursor, got (%v,%v)", br, bi, ar, ai)
	}
	if v.View().Span != HomeView().Span/2 {
		t.Errorf("Expected span halved, got %v", v.View().Span)
	}
}

func TestDrawAndClickZoom(t *testing.T) {
	v := NewViewer(30, 4)
	v.Mount(40, 20)
	dst := rendertest.NewSurface(40, 20)
	v.Draw(dst)
	if len(dst.Rects) != 50 {
		t.Fatalf("Expected 10x5 cells, got %d", len(dst.Rects))
	}

	in := rendertest.NewInput()
	in.X, in.Y = 20, 10
	v.Update(in, 0)
	in.Button = true
	if err := v.Update(in, 0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if v.View().Span != HomeView().Span/2 {
		t.Errorf("Expected one zoom step, got span %v", v.View().Span)
	}
	// holding the button does not zoom again
	v.Update(in, 0)
	if v.View().Span != HomeView().Span/2 {
		t.Errorf("Expected a single zoom per click, got span %v", v.View().Span)
	}

	in.Press(render.KeySpace)
	v.Update(in, 0)
	if v.View() != HomeView() {
		t.Errorf("Expected reset to the home view, got %+v", v.View())
	}
}

func TestPan(t *testing.T) {
	v := NewViewer(30, 4)
	in := rendertest.NewInput()
	in.Press(render.KeyD)
	v.Update(in, 1)
	if v.View().CenterR <= HomeView().CenterR {
		t.Errorf("Expected D to pan right, got %v", v.View().CenterR)
	}
}

func TestShadeInsideIsBlack(t *testing.T) {
	v := NewViewer(30, 4)
	if got := v.shade(30); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestButtonHeldAcrossMountIsNotAClick(t *testing.T) {
	v := NewViewer(30, 4)
	dst := rendertest.NewSurface(40, 20)
	v.Mount(40, 20)
	v.Draw(dst)

	in := rendertest.NewInput()
	in.X, in.Y, in.Button = 5, 5, true
	v.Update(in, 0)
	v.Update(in, 0)
	if v.View() != HomeView() {
		t.Fatalf("Expected no zoom while the opening press is held, got %+v", v.View())
	}

	in.Button = false
	v.Update(in, 0)
	in.Button = true
	v.Update(in, 0)
	if v.View().Span != HomeView().Span/2 {
		t.Errorf("Expected a fresh press to zoom, got span %v", v.View().Span)
	}
}

func TestRemountForgetsGridSize(t *testing.T) {
	v := NewViewer(30, 4)
	v.Mount(40, 20)
	v.Draw(rendertest.NewSurface(40, 20))
	v.Unmount()
	v.Mount(80, 40)

	// no Draw yet: a click has no size to map against
	in := rendertest.NewInput()
	v.Update(in, 0)
	in.Button = true
	v.Update(in, 0)
	if v.View() != HomeView() {
		t.Errorf("Expected no zoom before the first draw, got %+v", v.View())
	}
}
