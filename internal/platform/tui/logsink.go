package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-run/internal/core"
)

// loggingSink forwards audio cues to another sink and logs each one at debug level.
type loggingSink struct {
	next   core.AudioSink
	logger *log.Logger
}

// NewLoggingSink wraps next so every cue is logged. A nil next discards cues,
// a nil logger skips logging.
func NewLoggingSink(next core.AudioSink, logger *log.Logger) core.AudioSink {
	if next == nil {
		next = core.NopAudio{}
	}
	if logger == nil {
		return next
	}
	return &loggingSink{next: next, logger: logger}
}

func (s *loggingSink) PlaySound(snd core.Sound) {
	s.logger.Debug("sound", "cue", snd)
	s.next.PlaySound(snd)
}

func (s *loggingSink) Music(cue core.MusicCue) {
	s.logger.Debug("music", "cue", cue)
	s.next.Music(cue)
}
