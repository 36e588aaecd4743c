// Package audio synthesizes Veggie Run's sound cues and background music
// with beep. Every call is safe without an audio device: when the speaker
// cannot be opened the manager stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/veggie-run/internal/core"
)

const (
	sampleRate       = beep.SampleRate(44100)
	speakerBufferDur = 100 * time.Millisecond
	musicBPM         = 150
)

// Manager plays cues through the system speaker. It implements core.AudioSink.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewManager creates a manager at the given master volume in [0,1].
func NewManager(volume float64) *Manager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDur)); err != nil {
		return err
	}

	speaker.Play(newVolume(m.mixer, m.volume))
	m.initialized = true
	return nil
}

// Enabled reports whether cues are actually played.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// PlaySound queues a one-shot effect.
func (m *Manager) PlaySound(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := Effect(s, sampleRate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Music starts, stops or rewinds the background loop.
func (m *Manager) Music(cue core.MusicCue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	switch cue {
	case core.MusicStart:
		// Already playing: leave it alone
		if m.music != nil && !m.music.Paused {
			return
		}
		if m.music != nil {
			m.music.Paused = false
			return
		}
		m.startMusic()
	case core.MusicStop:
		if m.music != nil {
			m.music.Paused = true
		}
	case core.MusicRestart:
		if m.music != nil {
			m.music.Paused = true
			m.music.Streamer = nil // The mixer drops a Ctrl with no streamer
		}
		m.startMusic()
	}
}

// startMusic must be called with both locks held.
func (m *Manager) startMusic() {
	m.music = &beep.Ctrl{Streamer: newVolume(NewMusic(sampleRate, musicBPM), 0.35)}
	m.mixer.Add(m.music)
}

// Close silences everything. The manager can be initialized again.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.music = nil
	m.initialized = false
}

var _ core.AudioSink = (*Manager)(nil)
