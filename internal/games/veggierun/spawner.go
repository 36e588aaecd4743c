package veggierun

import (
	"math"

	"github.com/vovakirdan/veggie-run/internal/config"
)

// Rand is a uniform source over [0,1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// unit draws from r and forces the value into [0,1). NaN counts as 0.
func unit(r Rand) float64 {
	v := r.Float64()
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// Spawner decides when a new object appears and builds it.
type Spawner struct {
	cfg   *config.RunnerConfig
	rng   Rand
	timer int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.RunnerConfig, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset clears the spawn timer.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the ticks counted since the last spawn.
func (s *Spawner) Timer() int {
	return s.timer
}

// TrySpawn counts one tick and returns a new object once the timer passes
// the score-dependent interval.
func (s *Spawner) TrySpawn(score int, gameSpeed float64) (WorldObject, bool) {
	s.timer++
	if s.timer <= s.cfg.Spawn.Interval(score) {
		return WorldObject{}, false
	}
	s.timer = 0
	return s.Spawn(gameSpeed), true
}

// PickKind maps a draw over [0,100) to an ordinary object kind.
func (s *Spawner) PickKind(roll float64) Kind {
	sp := s.cfg.Spawn
	switch {
	case roll < sp.ObstacleBelow:
		return KindObstacle
	case roll < sp.FoodBelow:
		return KindFood
	case roll < sp.PetBelow:
		return KindPet
	case roll < sp.UnicornBelow:
		return KindUnicorn
	default:
		return KindFloatingHazard
	}
}

// Spawn builds one ordinary object just past the right edge.
func (s *Spawner) Spawn(gameSpeed float64) WorldObject {
	kind := s.PickKind(unit(s.rng) * 100)
	spec := s.spec(kind)

	obj := WorldObject{
		Kind:  kind,
		W:     spec.Size,
		H:     spec.Size,
		Speed: gameSpeed + spec.SpeedOffset,
		Y:     s.footY(spec.Size),
	}

	switch kind {
	case KindFood:
		obj.Y -= s.foodLift()
	case KindPet:
		obj.Pet = PetState{Row: PetSleeping}
	case KindObstacle, KindUnicorn, KindFloatingHazard:
	case KindBoss:
		// Never drawn here; bosses come from SpawnBoss
	}

	obj.X = s.cfg.Screen.Width + unit(s.rng)*s.cfg.Spawn.XJitter
	if kind == KindFood {
		obj.FoodVariant = int(unit(s.rng) * float64(s.cfg.Spawn.FoodVariants))
	}
	return obj
}

// foodLift returns how far above the feet line a food item floats.
// Low items are grabbed running, high ones need a jump.
func (s *Spawner) foodLift() float64 {
	sp := s.cfg.Spawn
	band := unit(s.rng)
	jitter := unit(s.rng)
	switch {
	case band < sp.FoodLowChance:
		return jitter * 50
	case band < sp.FoodMidChance:
		return 80 + jitter*60
	default:
		return 140 + jitter*80
	}
}

// SpawnBoss builds the boss at full health, moving left.
func (s *Spawner) SpawnBoss() WorldObject {
	spec := s.cfg.Objects.Boss
	return WorldObject{
		Kind:  KindBoss,
		X:     s.cfg.Screen.Width - s.cfg.Boss.SpawnOffset,
		Y:     s.footY(spec.Size),
		W:     spec.Size,
		H:     spec.Size,
		Speed: s.cfg.Boss.Speed,
		Boss: BossState{
			Health:    s.cfg.Boss.Health,
			Direction: -1,
		},
	}
}

// BossDue reports whether the boss fight should start.
func BossDue(foodCollected int, bossActive bool, trigger int) bool {
	return foodCollected >= trigger && !bossActive
}

// footY aligns an object's bottom with the standing player's feet.
func (s *Spawner) footY(size float64) float64 {
	return s.cfg.Player.GroundY + s.cfg.Player.Height - size
}

func (s *Spawner) spec(kind Kind) config.ObjectSpec {
	spec, _ := s.cfg.Objects.Spec(kind.String())
	return spec
}
