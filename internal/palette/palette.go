// Package palette holds the static colour tables used by the demos and the
// hex colour helpers that build them.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedHex is wrapped by every hex parsing failure.
var ErrMalformedHex = errors.New("malformed hex color")

// Palette is an ordered list of colours.
type Palette []color.RGBA

// Must builds a palette from hex strings and panics on a malformed entry.
func Must(hexes ...string) Palette {
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		p[i] = MustParse(h)
	}
	return p
}

// Parse converts "#rrggbb" (or "rrggbb") to an opaque RGBA colour.
func Parse(hex string) (color.RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q is not 6 digits", ErrMalformedHex, hex)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrMalformedHex, hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParse is Parse for compile-time constants.
func MustParse(hex string) color.RGBA {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats an RGBA colour as lowercase "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken scales every channel of hex by (100-percent)/100.
// percent is clamped to [0, 100].
func Darken(hex string, percent float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return Hex(DarkenRGBA(c, percent)), nil
}

// DarkenRGBA is Darken on an already parsed colour. Alpha is kept.
func DarkenRGBA(c color.RGBA, percent float64) color.RGBA {
	percent = math.Max(0, math.Min(100, percent))
	factor := (100 - percent) / 100
	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * factor))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// Sample returns a uniformly random entry.
func (p Palette) Sample(rng *rand.Rand) color.RGBA {
	return p[rng.Intn(len(p))]
}

// SampleExcluding returns a uniformly random entry different from current.
// If every entry equals current, current is returned.
func (p Palette) SampleExcluding(rng *rand.Rand, current color.RGBA) color.RGBA {
	n := 0
	for _, c := range p {
		if c != current {
			n++
		}
	}
	if n == 0 {
		return current
	}
	pick := rng.Intn(n)
	for _, c := range p {
		if c == current {
			continue
		}
		if pick == 0 {
			return c
		}
		pick--
	}
	return current
}

// At returns the entry at i modulo the palette length.
func (p Palette) At(i int) color.RGBA {
	n := len(p)
	return p[((i%n)+n)%n]
}
