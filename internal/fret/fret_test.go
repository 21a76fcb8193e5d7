package fret

import (
	"math"
	"testing"

	"chosenoffset.com/folio/internal/render"
	"chosenoffset.com/folio/internal/render/rendertest"
)

func TestNoteToMidiBase(t *testing.T) {
	tests := map[string]int{
		"C": 0, "C#": 1, "Db": 1, "E": 4, "Gb": 6, "A#": 10, "B": 11, "H": -1, "": -1,
	}
	for note, want := range tests {
		if got := NoteToMidiBase(note); got != want {
			t.Errorf("NoteToMidiBase(%q): Expected %d, got %d", note, want, got)
		}
	}
}

func TestMidiToNote(t *testing.T) {
	if got := MidiToNote(61, nil); got != "C#" {
		t.Errorf("Expected C#, got %s", got)
	}
	sharps := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	if got := MidiToNote(63, sharps); got != "D#" {
		t.Errorf("Expected D#, got %s", got)
	}
	if got := MidiToNoteWithOctaveString(40, nil); got != "E2" {
		t.Errorf("Expected E2, got %s", got)
	}
	if Octave(60) != 4 || Octave(0) != -1 || Octave(11) != -1 || Octave(12) != 0 {
		t.Error("Unexpected octave numbering")
	}
}

func TestDistanceFromNut(t *testing.T) {
	const L = 648.0
	if DistanceFromNut(0, L) != 0 {
		t.Error("Expected the nut at distance 0")
	}
	if got := DistanceFromNut(12, L); math.Abs(got-L/2) > 1e-9 {
		t.Errorf("Expected fret 12 at %v, got %v", L/2, got)
	}
	if got := DistanceFromNut(24, L); math.Abs(got-L*3/4) > 1e-9 {
		t.Errorf("Expected fret 24 at %v, got %v", L*3/4, got)
	}
	prev := 0.0
	for f := 1; f <= 24; f++ {
		d := DistanceFromNut(f, L)
		if d <= prev {
			t.Fatalf("fret %d: distances must increase, got %v after %v", f, d, prev)
		}
		prev = d
	}
}

func TestMarkersAreInScale(t *testing.T) {
	cfg := StandardTuning()
	markers := cfg.Markers()
	if len(markers) == 0 {
		t.Fatal("Expected markers")
	}
	for _, m := range markers {
		if !cfg.InScale(m.Midi) {
			t.Errorf("marker %+v is not in scale", m)
		}
		if m.Midi != cfg.Strings[m.String]+m.Fret {
			t.Errorf("marker %+v has inconsistent midi", m)
		}
	}
	first := markers[0]
	if first.String != 0 || first.Fret != 0 || first.Midi != 40 {
		t.Errorf("Expected open low E first, got %+v", first)
	}
}

func TestBoardTranspose(t *testing.T) {
	b := NewBoard(StandardTuning(), nil)
	if b.Title() != "C major - Rainbow" {
		t.Errorf("Expected 'C major - Rainbow', got %q", b.Title())
	}

	in := rendertest.NewInput()
	in.Press(render.KeyUp)
	in.Press(render.KeyRight)
	if err := b.Update(in, 0.016); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if b.Config().Root != 1 || b.Title() != "C# major - Blue" {
		t.Errorf("Expected 'C# major - Blue', got %q", b.Title())
	}

	b.Transpose(-2)
	if b.Config().Root != 11 || b.Config().Title != "B major" {
		t.Errorf("Expected B major, got %q root %d", b.Config().Title, b.Config().Root)
	}
}

func TestBoardGeometry(t *testing.T) {
	b := NewBoard(StandardTuning(), nil)
	const width = 1040.0
	if b.FretX(0, width) != boardMargin {
		t.Errorf("Expected nut at %v, got %v", boardMargin, b.FretX(0, width))
	}
	if math.Abs(b.FretX(24, width)-(width-boardMargin)) > 1e-9 {
		t.Errorf("Expected last fret at %v, got %v", width-boardMargin, b.FretX(24, width))
	}
	if b.StringY(0, 400) <= b.StringY(5, 400) {
		t.Error("Expected the lowest string drawn below the highest")
	}
}

func TestBoardDraw(t *testing.T) {
	cfg := StandardTuning()
	b := NewBoard(cfg, rendertest.Text{})
	dst := rendertest.NewSurface(1200, 400)
	b.Mount(1200, 400)
	b.Draw(dst)

	// background + frets + strings + markers
	want := 1 + (cfg.FretCount + 1) + len(cfg.Strings) + len(cfg.Markers())
	if len(dst.Rects) != want {
		t.Errorf("Expected %d rects, got %d", want, len(dst.Rects))
	}
	if len(dst.Texts) == 0 {
		t.Error("Expected root labels")
	}
	for _, s := range dst.Texts {
		if s[0] != 'C' {
			t.Errorf("Expected only C labels, got %q", s)
		}
	}
}
