package fret

import (
	"image/color"

	"chosenoffset.com/folio/internal/palette"
	"chosenoffset.com/folio/internal/render"
)

const (
	boardMargin = 40.0
	markerSize  = 14.0
	fretWidth   = 2.0
	nutWidth    = 6.0
)

var (
	boardBackground = color.RGBA{24, 20, 18, 255}
	fretColor       = color.RGBA{180, 180, 170, 255}
	stringColor     = color.RGBA{220, 210, 190, 255}
	labelColor      = color.RGBA{255, 255, 255, 255}
)

// Board is the fretboard visualizer scene. Left/Right cycles the palette,
// Up/Down transposes the scale root.
type Board struct {
	cfg        Config
	paletteIdx int
	text       render.TextRenderer
	width      int
	height     int
}

// NewBoard creates a board for cfg. text may be nil.
func NewBoard(cfg Config, text render.TextRenderer) *Board {
	return &Board{cfg: cfg, text: text}
}

// Title implements the scene contract.
func (b *Board) Title() string {
	return b.cfg.Title + " - " + palette.Named[b.paletteIdx].Name
}

// Config returns the current diagram configuration.
func (b *Board) Config() Config { return b.cfg }

// Mount records the surface size.
func (b *Board) Mount(width, height int) {
	b.width, b.height = width, height
}

// Unmount has nothing to release.
func (b *Board) Unmount() {}

// Update handles palette cycling and transposition.
func (b *Board) Update(im render.InputManager, dt float64) error {
	n := len(palette.Named)
	if im.IsKeyJustPressed(render.KeyRight) {
		b.paletteIdx = (b.paletteIdx + 1) % n
	}
	if im.IsKeyJustPressed(render.KeyLeft) {
		b.paletteIdx = (b.paletteIdx + n - 1) % n
	}
	if im.IsKeyJustPressed(render.KeyUp) {
		b.Transpose(1)
	}
	if im.IsKeyJustPressed(render.KeyDown) {
		b.Transpose(-1)
	}
	return nil
}

// Transpose shifts the scale root by semitones.
func (b *Board) Transpose(semitones int) {
	b.cfg.Root = PitchClass(b.cfg.Root + semitones)
	b.cfg.Title = MidiToNote(b.cfg.Root, nil) + " major"
}

// FretX returns the device x of fret f for a board drawn across width pixels.
func (b *Board) FretX(f int, width float64) float64 {
	total := DistanceFromNut(b.cfg.FretCount, b.cfg.ScaleLength)
	return boardMargin + DistanceFromNut(f, b.cfg.ScaleLength)/total*(width-2*boardMargin)
}

// StringY returns the device y of string s (0 = lowest, drawn at the bottom).
func (b *Board) StringY(s int, height float64) float64 {
	n := len(b.cfg.Strings)
	if n < 2 {
		return height / 2
	}
	top, bottom := boardMargin*2, height-boardMargin*2
	return bottom - float64(s)*(bottom-top)/float64(n-1)
}

// MarkerColor returns the colour of a marker: the palette entry for its
// pitch class, darkened a step per octave above the lowest.
func (b *Board) MarkerColor(midi int) color.RGBA {
	c := palette.Named[b.paletteIdx].Colors.At(PitchClass(midi))
	return palette.DarkenRGBA(c, float64(Octave(midi)-2)*12)
}

// Draw renders frets, strings and in-scale markers.
func (b *Board) Draw(dst render.Surface) {
	w, h := dst.Size()
	width, height := float64(w), float64(h)
	dst.Clear()
	dst.FillRect(0, 0, width, height, boardBackground)

	top, bottom := b.StringY(len(b.cfg.Strings)-1, height), b.StringY(0, height)
	for f := 0; f <= b.cfg.FretCount; f++ {
		x := b.FretX(f, width)
		fw := fretWidth
		if f == 0 {
			fw = nutWidth
		}
		dst.FillRect(x-fw/2, top, fw, bottom-top, fretColor)
	}
	for s := range b.cfg.Strings {
		y := b.StringY(s, height)
		thick := 1 + float64(len(b.cfg.Strings)-1-s)*0.4
		dst.FillRect(b.FretX(0, width), y-thick/2, b.FretX(b.cfg.FretCount, width)-b.FretX(0, width), thick, stringColor)
	}

	for _, m := range b.cfg.Markers() {
		x := b.markerX(m.Fret, width)
		y := b.StringY(m.String, height)
		dst.FillRect(x-markerSize/2, y-markerSize/2, markerSize, markerSize, b.MarkerColor(m.Midi))
		if b.text != nil && PitchClass(m.Midi) == b.cfg.Root {
			nm := NoteMarker{Note: MidiToNoteWithOctaveString(m.Midi, nil)}
			b.text.DrawText(dst, nm.Note, int(x-markerSize/2), int(y+markerSize/2+2), labelColor)
		}
	}
}

// markerX places a marker midway between fret f-1 and f; open strings sit
// just left of the nut.
func (b *Board) markerX(f int, width float64) float64 {
	if f == 0 {
		return b.FretX(0, width) - markerSize
	}
	return (b.FretX(f-1, width) + b.FretX(f, width)) / 2
}
