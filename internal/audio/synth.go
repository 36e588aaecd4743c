package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/veggie-run/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// oscillator plays one tone for a fixed number of samples.
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a streamer playing freq for d. A non-zero sweep slides the
// pitch by that many Hz per second.
func NewTone(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := shape(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func shape(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope fades a stream in over attack and out over the final release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a jingle.
type note struct {
	freq float64
	dur  time.Duration
}

// jingle plays notes back to back with a short attack and release on each.
func jingle(notes []note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone := NewTone(n.freq, 0, n.dur, wave, rate)
		parts = append(parts, NewEnvelope(tone, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return beep.Seq(parts...)
}

// Effect builds the streamer for a sound cue. Each call returns a fresh
// streamer; streamers cannot be replayed.
func Effect(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundJump:
		// Rising chirp
		d := 150 * time.Millisecond
		return newVolume(NewEnvelope(NewTone(330, 2400, d, WaveSquare, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.25)
	case core.SoundCollect:
		// Bell: fundamental plus an octave
		d := 220 * time.Millisecond
		fund := NewEnvelope(NewTone(880, 0, d, WaveSine, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate)
		over := NewEnvelope(NewTone(1760, 0, d, WaveSine, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
		return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), 0.5)
	case core.SoundHit:
		// Falling thud
		d := 180 * time.Millisecond
		return newVolume(NewEnvelope(NewTone(220, -600, d, WaveSquare, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate), 0.3)
	case core.SoundLove:
		return newVolume(jingle([]note{
			{523.25, 120 * time.Millisecond}, // C5
			{659.25, 120 * time.Millisecond}, // E5
			{783.99, 120 * time.Millisecond}, // G5
			{1046.5, 320 * time.Millisecond}, // C6
		}, WaveTriangle, rate), 0.5)
	case core.SoundGameOver:
		return newVolume(jingle([]note{
			{392.00, 250 * time.Millisecond}, // G4
			{349.23, 250 * time.Millisecond}, // F4
			{311.13, 250 * time.Millisecond}, // Eb4
			{261.63, 600 * time.Millisecond}, // C4
		}, WaveTriangle, rate), 0.5)
	default:
		return nil
	}
}

// melody is the background tune, one entry per eighth note. Zero is a rest.
var melody = []float64{
	392.00, 0, 329.63, 392.00, 440.00, 392.00, 329.63, 0,
	349.23, 0, 293.66, 349.23, 392.00, 349.23, 293.66, 0,
	329.63, 392.00, 523.25, 392.00, 440.00, 392.00, 329.63, 293.66,
	261.63, 0, 329.63, 0, 261.63, 0, 0, 0,
}

// musicLoop plays the melody over a walking bass forever.
type musicLoop struct {
	rate     beep.SampleRate
	step     int // Samples per eighth note
	position int
	phase    float64
	bass     float64
}

// NewMusic creates the endless background tune at the given tempo.
func NewMusic(rate beep.SampleRate, bpm float64) beep.Streamer {
	if bpm <= 0 {
		bpm = 140
	}
	return &musicLoop{
		rate: rate,
		step: rate.N(time.Duration(float64(time.Minute) / bpm / 2)),
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.position / m.step) % len(melody)
		inNote := m.position % m.step

		// Short decay per note keeps the line from droning
		env := math.Exp(-4 * float64(inNote) / float64(m.step))

		val := 0.0
		if f := melody[idx]; f > 0 {
			m.phase += f / float64(m.rate)
			m.phase -= math.Floor(m.phase)
			val += 0.5 * env * shape(WaveTriangle, m.phase)
		}

		bassFreq := melody[(idx/8)*8] / 2
		if bassFreq == 0 {
			bassFreq = 130.81
		}
		m.bass += bassFreq / float64(m.rate)
		m.bass -= math.Floor(m.bass)
		val += 0.2 * shape(WaveSine, m.bass)

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
