// Package sound plays the optional completion chime.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const chimeRate = beep.SampleRate(44100)

const (
	chimeDuration        = 400 * time.Millisecond
	chimeAttack          = 5 * time.Millisecond
	chimeRelease         = 350 * time.Millisecond
	chimeOvertoneRelease = 150 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// tone is a fixed-length sine oscillator
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples && e.releaseSamples > 0 {
			vol = float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// bell mixes an A5 fundamental with its octave overtone
func bell(rate beep.SampleRate) beep.Streamer {
	fund := newEnvelope(newTone(880, chimeDuration, rate), chimeDuration, chimeAttack, chimeRelease, rate)
	over := newEnvelope(newTone(1760, chimeDuration, rate), chimeDuration, chimeAttack, chimeOvertoneRelease, rate)

	return beep.Mix(
		withVolume(fund, 0.7),
		withVolume(over, 0.3),
	)
}

// Chime plays a short completion bell, blocking until it finishes.
// Speaker setup happens once per process; failures are returned so
// callers can treat the chime as best effort.
func Chime() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(chimeRate, chimeRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return fmt.Errorf("init speaker: %w", speakerErr)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(bell(chimeRate), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
	return nil
}
