package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/popit/constants"
)

// ToneGenerator generates a sine note with a linear attack/release envelope
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

// NewToneGenerator creates a tone of the given frequency and duration
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		total:   sr.N(d),
		attack:  sr.N(constants.NoteAttack),
		release: sr.N(constants.NoteRelease),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := envelope(g.pos, g.total, g.attack, g.release) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewBuzzGenerator creates a buzz of the given fundamental and duration
func NewBuzzGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BuzzGenerator {
	return &BuzzGenerator{
		sr:    sr,
		freq:  freq,
		total: sr.N(d),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Odd-ish harmonic stack for a harsh buzz
		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms
		fade := math.Min(t/0.02, 1.0)
		sample *= fade

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// envelope returns the gain at pos for a note of total samples
func envelope(pos, total, attack, release int) float64 {
	gain := 1.0
	if attack > 0 && pos < attack {
		gain = float64(pos) / float64(attack)
	}
	if remaining := total - pos; release > 0 && remaining < release {
		gain = math.Min(gain, float64(remaining)/float64(release))
	}
	return gain
}
