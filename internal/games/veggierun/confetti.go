package veggierun

import "github.com/vovakirdan/veggie-run/internal/config"

// ConfettiColors is the celebration palette, indexed by Confetti.Color.
var ConfettiColors = [...]string{"#ff69b4", "#ff6b6b", "#ffd93d", "#6bcb77", "#4d96ff", "#9b59b6", "#ff85a2", "#00d4ff"}

// Shape of a confetti piece.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// Confetti is one cosmetic particle. It never collides with anything.
type Confetti struct {
	X, Y          float64
	VX, VY        float64
	Size          float64
	Color         int
	Rotation      float64
	RotationSpeed float64
	Shape         Shape
	Gravity       float64
}

// ConfettiEmitter creates particles near the top center of the screen.
type ConfettiEmitter struct {
	cfg *config.RunnerConfig
	rng Rand
}

// NewConfettiEmitter creates an emitter with its own random stream.
func NewConfettiEmitter(cfg *config.RunnerConfig, rng Rand) *ConfettiEmitter {
	return &ConfettiEmitter{cfg: cfg, rng: rng}
}

// Emit returns n fresh particles, none when n <= 0.
func (e *ConfettiEmitter) Emit(n int) []Confetti {
	if n <= 0 {
		return nil
	}
	out := make([]Confetti, 0, n)
	for i := 0; i < n; i++ {
		p := Confetti{
			X:             e.cfg.Screen.Width/2 + (unit(e.rng)-0.5)*300,
			Y:             80 + unit(e.rng)*50,
			VX:            (unit(e.rng) - 0.5) * 8,
			VY:            -unit(e.rng)*4 - 2,
			Size:          unit(e.rng)*12 + 6,
			Color:         int(unit(e.rng) * float64(len(ConfettiColors))),
			Rotation:      unit(e.rng) * 360,
			RotationSpeed: (unit(e.rng) - 0.5) * 15,
			Gravity:       e.cfg.Confetti.Gravity,
		}
		if unit(e.rng) > 0.5 {
			p.Shape = ShapeRect
		}
		out = append(out, p)
	}
	return out
}

// updateConfetti moves every particle and drops those that fell below floor.
func updateConfetti(ps []Confetti, floor float64) []Confetti {
	kept := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.VY += p.Gravity
		p.Y += p.VY
		p.Rotation += p.RotationSpeed
		if p.Y > floor {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
