// Package sound produces the game's audio clips. Clips come from files when
// present and are otherwise synthesized.
package sound

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"mothershipmayhem/game"
)

// SampleRate is the rate every clip is produced or resampled at
const SampleRate = beep.SampleRate(44100)

// Format is the in-memory clip format: stereo, 16-bit
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// note is one step of a synthesized melody
type note struct {
	freq   float64
	length time.Duration
	square bool
}

// Synth generates the built-in clip for a one-shot sound
func Synth(sound game.Sound, sr beep.SampleRate) (beep.Streamer, error) {
	switch sound {
	case game.SoundExplosion:
		return explosion(sr), nil
	case game.SoundFire:
		return melody(sr, 0.6, []note{
			{freq: 1320, length: 40 * time.Millisecond, square: true},
			{freq: 990, length: 40 * time.Millisecond, square: true},
			{freq: 660, length: 60 * time.Millisecond, square: true},
		})
	case game.SoundWin:
		return melody(sr, 0.8, []note{
			{freq: 523.25, length: 140 * time.Millisecond},
			{freq: 659.25, length: 140 * time.Millisecond},
			{freq: 783.99, length: 140 * time.Millisecond},
			{freq: 1046.50, length: 420 * time.Millisecond},
		})
	case game.SoundLose:
		return melody(sr, 0.7, []note{
			{freq: 440, length: 220 * time.Millisecond, square: true},
			{freq: 370, length: 220 * time.Millisecond, square: true},
			{freq: 311, length: 220 * time.Millisecond, square: true},
			{freq: 262, length: 500 * time.Millisecond, square: true},
		})
	default:
		return nil, fmt.Errorf("synth: unknown sound %d", sound)
	}
}

// Music renders the built-in background loop into a seekable buffer
func Music(sr beep.SampleRate) (*beep.Buffer, error) {
	bass := []float64{110, 110, 146.83, 130.81, 98, 98, 130.81, 123.47}
	notes := make([]note, 0, len(bass)*2)
	for _, f := range bass {
		notes = append(notes,
			note{freq: f, length: 250 * time.Millisecond},
			note{freq: f * 2, length: 250 * time.Millisecond},
		)
	}

	s, err := melody(sr, 0.25, notes)
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// melody plays notes back to back, each shaped by a decay envelope
func melody(sr beep.SampleRate, volume float64, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		var (
			tone beep.Streamer
			err  error
		)
		if n.square {
			tone, err = generators.SquareTone(sr, n.freq)
		} else {
			tone, err = generators.SineTone(sr, n.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("tone %.1fHz: %w", n.freq, err)
		}
		length := sr.N(n.length)
		parts = append(parts, newDecay(beep.Take(length, tone), length))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// explosion is a burst of white noise fading out
func explosion(sr beep.SampleRate) beep.Streamer {
	rng := rand.New(rand.NewSource(1))
	noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
	length := sr.N(450 * time.Millisecond)
	return withVolume(newDecay(beep.Take(length, noise), length), 0.7)
}

// withVolume scales a streamer by a linear gain
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// decay fades a finite streamer from full level to silence over length samples
type decay struct {
	s      beep.Streamer
	pos    int
	length int
}

func newDecay(s beep.Streamer, length int) *decay {
	return &decay{s: s, length: length}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.pos)/float64(d.length)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.s.Err()
}
