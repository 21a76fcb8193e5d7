// Package fret holds the music math behind the fretboard visualizer and the
// scene that draws it.
package fret

import (
	"fmt"
	"math"
)

// ChromaticScale lists every pitch class.
var ChromaticScale = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// DefaultNoteNames names pitch classes, mixing sharps and flats the way
// guitarists usually read them.
var DefaultNoteNames = []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// NoteToMidiBase returns the pitch class of a note name, or -1 if unknown.
func NoteToMidiBase(note string) int {
	switch note {
	case "C":
		return 0
	case "C#", "Db":
		return 1
	case "D":
		return 2
	case "D#", "Eb":
		return 3
	case "E":
		return 4
	case "F":
		return 5
	case "F#", "Gb":
		return 6
	case "G":
		return 7
	case "G#", "Ab":
		return 8
	case "A":
		return 9
	case "A#", "Bb":
		return 10
	case "B":
		return 11
	default:
		return -1
	}
}

// PitchClass returns midi mod 12 in [0, 12).
func PitchClass(midi int) int {
	return ((midi % 12) + 12) % 12
}

// MidiToNote names the pitch class of a midi note. A nil names slice uses
// DefaultNoteNames.
func MidiToNote(midi int, names []string) string {
	if names == nil {
		names = DefaultNoteNames
	}
	return names[PitchClass(midi)]
}

// Octave returns the scientific octave number; midi 0 is C-1.
func Octave(midi int) int {
	return int(math.Floor(float64(midi)/12)) - 1
}

// MidiToNoteWithOctave returns the note name and octave separately.
func MidiToNoteWithOctave(midi int, names []string) (string, int) {
	return MidiToNote(midi, names), Octave(midi)
}

// MidiToNoteWithOctaveString formats a midi note as e.g. "E2".
func MidiToNoteWithOctaveString(midi int, names []string) string {
	note, oct := MidiToNoteWithOctave(midi, names)
	return fmt.Sprintf("%s%d", note, oct)
}

// DistanceFromNut returns the distance of fret n from the nut on a string of
// the given scale length. Fret 0 is the nut itself.
func DistanceFromNut(fret int, scaleLength float64) float64 {
	return scaleLength - scaleLength/math.Pow(2, float64(fret)/12)
}

// NoteMarker labels a fretboard position.
type NoteMarker struct {
	Note  string
	Color string // optional "#rrggbb"
}

// Config describes one fretboard diagram.
type Config struct {
	Scale       []int // pitch classes relative to Root
	Root        int   // pitch class of the scale root
	Title       string
	Strings     []int // open-string midi notes, lowest first
	FretCount   int
	ScaleLength float64
	ScaleWidth  float64
}

// StandardTuning returns a 24-fret, standard-tuned six-string showing the
// C major scale.
func StandardTuning() Config {
	return Config{
		Scale:       []int{0, 2, 4, 5, 7, 9, 11},
		Root:        0,
		Title:       "C major",
		Strings:     []int{40, 45, 50, 55, 59, 64},
		FretCount:   24,
		ScaleLength: 648,
		ScaleWidth:  56,
	}
}

// InScale reports whether midi belongs to the configured scale.
func (c Config) InScale(midi int) bool {
	pc := PitchClass(midi - c.Root)
	for _, s := range c.Scale {
		if PitchClass(s) == pc {
			return true
		}
	}
	return false
}

// Markers returns a marker for every in-scale position, per string then fret.
func (c Config) Markers() []Marker {
	var out []Marker
	for si, open := range c.Strings {
		for f := 0; f <= c.FretCount; f++ {
			midi := open + f
			if !c.InScale(midi) {
				continue
			}
			out = append(out, Marker{String: si, Fret: f, Midi: midi})
		}
	}
	return out
}

// Marker is one in-scale fretboard position.
type Marker struct {
	String int
	Fret   int
	Midi   int
}
