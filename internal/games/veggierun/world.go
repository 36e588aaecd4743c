package veggierun

import (
	"math"

	"github.com/vovakirdan/veggie-run/internal/config"
)

// Layers holds the looping offsets of the two background and two foreground
// copies. Each pair alternates to cover the screen with a small overlap.
type Layers struct {
	Background [2]float64
	Foreground [2]float64
}

// NewLayers places the second copy of each layer one span to the right.
func NewLayers(w config.WorldConfig, screenW float64) Layers {
	start := layerSpan(w, screenW) - w.LayerOverlap
	return Layers{
		Background: [2]float64{0, start},
		Foreground: [2]float64{0, start},
	}
}

// Scroll moves every copy left and wraps the ones that left the screen.
func (l *Layers) Scroll(w config.WorldConfig, screenW float64) {
	span := layerSpan(w, screenW)
	for i := range l.Background {
		l.Background[i] = wrapLayer(l.Background[i]-w.BackgroundSpeed, span, w.LayerOverlap)
	}
	for i := range l.Foreground {
		l.Foreground[i] = wrapLayer(l.Foreground[i]-w.ForegroundSpeed, span, w.LayerOverlap)
	}
}

func layerSpan(w config.WorldConfig, screenW float64) float64 {
	return screenW * w.LayerWidthFactor
}

func wrapLayer(offset, span, overlap float64) float64 {
	if offset <= -span {
		return span - overlap
	}
	return offset
}

// Session is the whole mutable state of one run, from restart to game over.
type Session struct {
	Player   Player
	Objects  []WorldObject
	Confetti []Confetti
	Layers   Layers

	Score          int
	FoodCollected  int
	BossesDefeated int
	GameSpeed      float64
	BossActive     bool
	GameOver       bool
	Ticks          int

	HurtTimer    int
	HugTimer     int
	HugActive    bool
	HugAnimFrame int
	PauseTimer   int
}

// newSession returns the state every run starts from.
func newSession(cfg *config.RunnerConfig) Session {
	return Session{
		Player: Player{
			X:      cfg.Player.X,
			Y:      cfg.Player.GroundY,
			W:      cfg.Player.Width,
			H:      cfg.Player.Height,
			Health: cfg.Player.MaxHealth,
			Row:    RowWalk,
		},
		Objects:   make([]WorldObject, 0, 16),
		Layers:    NewLayers(cfg.World, cfg.Screen.Width),
		GameSpeed: cfg.World.BaseSpeed,
	}
}

// Boss returns the active boss, if any.
func (s *Session) Boss() (WorldObject, bool) {
	for _, obj := range s.Objects {
		if obj.Kind == KindBoss {
			return obj, true
		}
	}
	return WorldObject{}, false
}

// move advances one object along its path and its animation.
func (s *Session) move(obj *WorldObject, cfg *config.RunnerConfig) {
	if obj.Kind == KindBoss {
		obj.X += obj.Speed * obj.Boss.Direction
		if obj.X <= 0 {
			obj.Boss.Direction = 1
		} else if obj.X+obj.W >= cfg.Screen.Width {
			obj.Boss.Direction = -1
		}
		if obj.Boss.HitCooldown > 0 {
			obj.Boss.HitCooldown--
		}
	} else {
		obj.X -= obj.Speed
	}

	obj.Frame = advanceFrame(obj.Frame, cfg.Objects.AnimationStep, columns(obj.Kind, cfg))

	if obj.Kind == KindFloatingHazard {
		obj.Bob += cfg.Objects.BobStep
		obj.Y += math.Sin(obj.Bob) * cfg.Objects.BobAmplitude
	}
}

// sweep moves every object, resolves contact with the player and drops what
// was consumed or left the screen. Removals are collected first and the list
// is compacted once at the end.
func (s *Session) sweep(cfg *config.RunnerConfig, r *Resolver) {
	removed := make([]bool, len(s.Objects))

	for i := range s.Objects {
		obj := &s.Objects[i]
		s.move(obj, cfg)

		if s.Player.Box().Overlaps(obj.Box()) && r.Resolve(s, obj) {
			removed[i] = true
			continue
		}

		if obj.Kind != KindBoss && obj.X < cfg.World.DespawnX {
			if obj.Kind == KindFood {
				s.GameSpeed += cfg.World.MissedFoodPenalty
			}
			removed[i] = true
			continue
		}

		if obj.Kind == KindPet && obj.Pet.Collected && s.PauseTimer == 0 {
			removed[i] = true
		}
	}

	kept := s.Objects[:0]
	for i, obj := range s.Objects {
		if !removed[i] {
			kept = append(kept, obj)
		}
	}
	s.Objects = kept
}

// columns returns the sprite width in frames for an object kind.
func columns(kind Kind, cfg *config.RunnerConfig) int {
	spec, ok := cfg.Objects.Spec(kind.String())
	if !ok || spec.FrameColumns <= 0 {
		return 1
	}
	return spec.FrameColumns
}
