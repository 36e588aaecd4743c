package veggierun

import (
	"github.com/vovakirdan/veggie-run/internal/config"
	"github.com/vovakirdan/veggie-run/internal/core"
)

// Resolver applies the reaction for a player touching an object.
type Resolver struct {
	cfg      *config.RunnerConfig
	audio    core.AudioSink
	confetti *ConfettiEmitter
}

// NewResolver creates a resolver that reports sounds to audio and draws
// celebration confetti from confetti.
func NewResolver(cfg *config.RunnerConfig, audio core.AudioSink, confetti *ConfettiEmitter) *Resolver {
	if audio == nil {
		audio = core.NopAudio{}
	}
	return &Resolver{cfg: cfg, audio: audio, confetti: confetti}
}

// Resolve reacts to the player overlapping obj and reports whether obj must
// be removed from the world. The caller has already checked the overlap.
func (r *Resolver) Resolve(s *Session, obj *WorldObject) bool {
	switch obj.Kind {
	case KindFood:
		return r.food(s)
	case KindObstacle:
		return r.injure(s, r.cfg.Reactions.ObstacleDamage)
	case KindPet:
		r.pet(s, obj)
		return false
	case KindUnicorn:
		return r.unicorn(s, obj)
	case KindFloatingHazard:
		return r.injure(s, r.cfg.Reactions.HazardDamage)
	case KindBoss:
		return r.boss(s, obj)
	default:
		return false
	}
}

func (r *Resolver) food(s *Session) bool {
	s.heal(r.cfg.Reactions.FoodHeal, r.cfg.Player.MaxHealth)
	s.Score++
	s.FoodCollected++
	r.audio.PlaySound(core.SoundCollect)
	return true
}

// injure is the shared path for obstacles, hazards and side hits on unicorns.
func (r *Resolver) injure(s *Session, amount int) bool {
	s.damage(amount, r.cfg.Player.MaxHealth)
	s.hurt(r.cfg.Timers.Hurt)
	r.audio.PlaySound(core.SoundHit)
	return true
}

// pet wakes a sleeping pet for a hug. A pet hugs once; it leaves when the
// freeze ends.
func (r *Resolver) pet(s *Session, obj *WorldObject) {
	if obj.Pet.Collected {
		return
	}
	s.Player.Health = r.cfg.Player.MaxHealth
	s.celebrate(r.cfg.Timers.PetHug, r.cfg.Timers.PetPause)
	s.Confetti = append(s.Confetti, r.confetti.Emit(r.cfg.Confetti.Burst)...)

	obj.Pet.Row = PetAwake
	obj.Pet.Collected = true
	obj.Frame = 0
	r.audio.PlaySound(core.SoundLove)
}

// unicorn bounces a player landing on its back and hurts one running into it.
func (r *Resolver) unicorn(s *Session, obj *WorldObject) bool {
	p := &s.Player
	if p.VelocityY > 0 && p.Y+p.H <= obj.Y+obj.H*r.cfg.Reactions.UnicornStompDepth {
		p.VelocityY = r.cfg.Physics.JumpStrength
		s.heal(r.cfg.Reactions.UnicornHeal, r.cfg.Player.MaxHealth)
		r.audio.PlaySound(core.SoundCollect)
		return false
	}
	return r.injure(s, r.cfg.Reactions.UnicornDamage)
}

// boss handles stomps from above and side contact. Both are gated by the
// boss's hit cooldown.
func (r *Resolver) boss(s *Session, obj *WorldObject) bool {
	if obj.Boss.HitCooldown != 0 {
		return false
	}

	p := &s.Player
	if !(p.Jumping && p.VelocityY > 0 && p.Y+p.H <= obj.Y+obj.H) {
		s.damage(r.cfg.Reactions.BossContactDamage, r.cfg.Player.MaxHealth)
		s.hurt(r.cfg.Timers.Hurt)
		obj.Boss.HitCooldown = r.cfg.Boss.ContactCooldown
		r.audio.PlaySound(core.SoundHit)
		return false
	}

	obj.Boss.Health--
	obj.Boss.HitCooldown = r.cfg.Boss.StompCooldown
	p.VelocityY = r.cfg.Physics.JumpStrength * r.cfg.Reactions.BossStompBounce

	// Each lost hit point shows the next sprite row.
	if row := r.cfg.Boss.Health - obj.Boss.Health; obj.Boss.Health > 0 && row != obj.Boss.Row {
		obj.Boss.Row = row
		obj.Frame = 0
	}

	if obj.Boss.Health > 0 {
		r.audio.PlaySound(core.SoundHit)
		return false
	}

	s.BossActive = false
	s.FoodCollected = 0
	s.BossesDefeated++
	s.heal(r.cfg.Reactions.BossDefeatHeal, r.cfg.Player.MaxHealth)
	s.celebrate(r.cfg.Timers.BossHug, r.cfg.Timers.BossPause)
	r.audio.PlaySound(core.SoundLove)
	return true
}
