package core

// Sound identifies a one-shot sound effect requested by the simulation.
type Sound int

const (
	SoundJump Sound = iota
	SoundCollect
	SoundHit
	SoundLove
	SoundGameOver
)

// String returns the cue name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCollect:
		return "collect"
	case SoundHit:
		return "hit"
	case SoundLove:
		return "love"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MusicCue controls the background music loop.
type MusicCue int

const (
	MusicStart   MusicCue = iota // Start if not already playing
	MusicStop                    // Stop playback
	MusicRestart                 // Rewind and play from the beginning
)

// String returns the cue name used in logs.
func (m MusicCue) String() string {
	switch m {
	case MusicStart:
		return "start"
	case MusicStop:
		return "stop"
	case MusicRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget audio requests from the simulation.
// Implementations must not block the caller.
type AudioSink interface {
	PlaySound(s Sound)
	Music(cue MusicCue)
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlaySound(Sound) {}
func (NopAudio) Music(MusicCue)  {}
