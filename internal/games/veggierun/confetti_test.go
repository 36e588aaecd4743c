package veggierun

import (
	"testing"

	"github.com/vovakirdan/veggie-run/internal/config"
)

func TestConfettiEmit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	e := NewConfettiEmitter(&cfg, script(0.5))

	ps := e.Emit(3)
	if len(ps) != 3 {
		t.Fatalf("got %d particles", len(ps))
	}

	p := ps[0]
	want := Confetti{
		X: 600, Y: 105, VX: 0, VY: -4, Size: 12, Color: 4,
		Rotation: 180, RotationSpeed: 0, Shape: ShapeCircle, Gravity: 0.15,
	}
	if p != want {
		t.Errorf("particle = %+v\nexpected   %+v", p, want)
	}
}

func TestConfettiShapes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	// Nine draws per particle; the last picks the shape
	e := NewConfettiEmitter(&cfg, script(0, 0, 0, 0, 0, 0, 0, 0, 0.9))

	if p := e.Emit(1)[0]; p.Shape != ShapeRect {
		t.Errorf("shape = %v, expected rect", p.Shape)
	}
}

func TestConfettiFallsAway(t *testing.T) {
	ps := []Confetti{
		{Y: 100, VY: 0, Gravity: 0.15},
		{Y: 769, VY: 2, Gravity: 0.15},
	}

	ps = updateConfetti(ps, 770)

	if len(ps) != 1 {
		t.Fatalf("particles = %d, expected 1", len(ps))
	}
	if !approx(ps[0].Y, 100.15) || !approx(ps[0].VY, 0.15) {
		t.Errorf("particle = %+v", ps[0])
	}
}

func TestConfettiEmitNothing(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	e := NewConfettiEmitter(&cfg, script(0.5))

	for _, n := range []int{0, -1, -50} {
		if ps := e.Emit(n); len(ps) != 0 {
			t.Errorf("Emit(%d) = %d particles, expected none", n, len(ps))
		}
	}
}

func TestPetHugWithoutConfetti(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Confetti.Burst = 0
	cfg.Confetti.Trickle = 0
	g := NewWith(cfg, script(0.5), script(0.5))

	place(g, KindPet, 150, feet(g, 125))
	step(g)

	if !g.s.HugActive {
		t.Fatal("hug should start")
	}
	if len(g.s.Confetti) != 0 {
		t.Errorf("confetti = %d, expected none", len(g.s.Confetti))
	}
}
