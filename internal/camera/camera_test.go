package camera

import "testing"

func TestRecompute(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy         float64
		vw, vh, ww, wh float64
		wantX, wantY   float64
	}{
		{"centred", 5000, 5000, 1600, 1000, 10000, 10000, 4200, 4500},
		{"clamped at origin", 10, 10, 1600, 1000, 10000, 10000, 0, 0},
		{"clamped at far edge", 9990, 9990, 1600, 1000, 10000, 10000, 8400, 9000},
		{"viewport equals world", 300, 200, 800, 600, 800, 600, 0, 0},
		{"viewport wider than world", 100, 5000, 1600, 1000, 1000, 10000, -300, 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.Recompute(tt.cx, tt.cy, tt.vw, tt.vh, tt.ww, tt.wh)
			if c.X != tt.wantX || c.Y != tt.wantY {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, c.X, c.Y)
			}
		})
	}
}

func TestRecomputeKeepsViewportInsideWorld(t *testing.T) {
	const ww, wh, vw, vh = 10000.0, 10000.0, 1600.0, 1000.0
	for x := -500.0; x <= 10500; x += 250 {
		for y := -500.0; y <= 10500; y += 250 {
			var c Camera
			c.Recompute(x, y, vw, vh, ww, wh)
			if c.X < 0 || c.X+vw > ww || c.Y < 0 || c.Y+vh > wh {
				t.Fatalf("centre (%v,%v): viewport escaped to (%v,%v)", x, y, c.X, c.Y)
			}
		}
	}
}
