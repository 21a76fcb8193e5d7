package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// CLydian is the frequency table bounce tones are drawn from, in Hz.
var CLydian = []float64{
	261.63 * 2,
	293.66 / 2,
	329.63 * 2,
	369.99 * 4,
	392.00 * 2,
	440.00,
	493.88 * 2,
	523.25,
}

// BounceDurations are the tone lengths a bounce may pick from.
var BounceDurations = []time.Duration{
	100 * time.Millisecond,
	200 * time.Millisecond,
	250 * time.Millisecond,
	450 * time.Millisecond,
	800 * time.Millisecond,
	3 * time.Second,
}

const (
	startGain = 0.2
	endGain   = 0.00001
)

// fade applies an exponential gain ramp from startGain to endGain over a
// fixed number of samples and then ends the stream.
type fade struct {
	src      beep.Streamer
	total    int
	position int
}

// NewFade wraps s so it lasts duration and decays exponentially.
func NewFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{src: s, total: rate.N(duration)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := f.total - f.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = f.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := gainAt(f.position, f.total)
		samples[i][0] *= g
		samples[i][1] *= g
		f.position++
	}
	return n, ok && n > 0
}

func (f *fade) Err() error { return f.src.Err() }

func gainAt(pos, total int) float64 {
	if total <= 1 {
		return startGain
	}
	t := float64(pos) / float64(total-1)
	return startGain * math.Pow(endGain/startGain, t)
}

// NewTone returns a faded sine tone of the given frequency and duration.
func NewTone(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewFade(sine, duration, rate), nil
}

// RandomBounceTone picks a frequency and duration the way bounce sounds do.
func RandomBounceTone(rng *rand.Rand, rate beep.SampleRate) (beep.Streamer, error) {
	freq := CLydian[rng.Intn(len(CLydian))]
	dur := BounceDurations[rng.Intn(len(BounceDurations))]
	return NewTone(rate, freq, dur)
}
