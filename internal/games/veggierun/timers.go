package veggierun

import (
	"github.com/vovakirdan/veggie-run/internal/config"
	"github.com/vovakirdan/veggie-run/internal/core"
)

// Row precedence: Celebrate outranks Hurt. A hit taken while celebrating
// still costs health and arms the hurt timer, but the row stays Celebrate.

// hurt enters the Hurt row for the given number of ticks.
func (s *Session) hurt(ticks int) {
	s.HurtTimer = ticks
	if s.Player.Row == RowCelebrate {
		return
	}
	s.Player.Row = RowHurt
	s.Player.Frame = 0
}

// celebrate enters the Celebrate row, starts the hug banner and freezes the
// world for pause ticks.
func (s *Session) celebrate(hug, pause int) {
	s.Player.Row = RowCelebrate
	s.Player.Frame = 0
	s.HugActive = true
	s.HugTimer = hug
	s.HugAnimFrame = 0
	s.PauseTimer = pause
}

// tickHurt counts the hurt timer down and returns to Walk when it expires.
func (s *Session) tickHurt() {
	if s.HurtTimer <= 0 {
		s.HurtTimer = 0
		return
	}
	s.HurtTimer--
	if s.HurtTimer == 0 && s.Player.Row == RowHurt {
		s.Player.Row = RowWalk
	}
}

// endCelebration drops the Celebrate row once the freeze is over.
func (s *Session) endCelebration() {
	if s.PauseTimer == 0 && s.Player.Row == RowCelebrate {
		s.Player.Row = RowWalk
	}
}

// tickHug advances the hug banner. It reports whether a confetti trickle is due.
func (s *Session) tickHug(interval int) bool {
	if !s.HugActive {
		return false
	}
	s.HugTimer--
	s.HugAnimFrame++
	due := interval > 0 && s.HugTimer%interval == 0
	if s.HugTimer <= 0 {
		s.HugTimer = 0
		s.HugActive = false
	}
	return due
}

// tickPaused runs one frozen tick: only animations move.
func (s *Session) tickPaused(cfg *config.RunnerConfig) {
	s.PauseTimer--
	s.Player.Frame = advanceFrame(s.Player.Frame, cfg.Player.AnimationStep, cfg.Player.FrameColumns)
	for i := range s.Objects {
		obj := &s.Objects[i]
		obj.Frame = advanceFrame(obj.Frame, cfg.Objects.AnimationStep, columns(obj.Kind, cfg))
	}
}

// heal adds health up to max.
func (s *Session) heal(amount, max int) {
	s.Player.Health = core.Clamp(s.Player.Health+amount, 0, max)
}

// damage removes health, never below 0.
func (s *Session) damage(amount, max int) {
	s.Player.Health = core.Clamp(s.Player.Health-amount, 0, max)
}
