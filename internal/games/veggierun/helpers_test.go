package veggierun

import (
	"math"
	"testing"

	"github.com/vovakirdan/veggie-run/internal/config"
	"github.com/vovakirdan/veggie-run/internal/core"
)

// scriptedRand replays vals in a loop.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func script(vals ...float64) *scriptedRand {
	return &scriptedRand{vals: vals}
}

// recordingAudio remembers every cue it receives.
type recordingAudio struct {
	sounds []core.Sound
	music  []core.MusicCue
}

func (a *recordingAudio) PlaySound(s core.Sound)  { a.sounds = append(a.sounds, s) }
func (a *recordingAudio) Music(cue core.MusicCue) { a.music = append(a.music, cue) }

func (a *recordingAudio) count(s core.Sound) int {
	n := 0
	for _, got := range a.sounds {
		if got == s {
			n++
		}
	}
	return n
}

func (a *recordingAudio) last() core.Sound {
	if len(a.sounds) == 0 {
		return -1
	}
	return a.sounds[len(a.sounds)-1]
}

// newTestGame returns a game with default tuning whose random draws all
// return 0.5 (a Food spawn).
func newTestGame(t *testing.T) (*Game, *recordingAudio) {
	t.Helper()
	g := NewWith(config.DefaultRunnerConfig(), script(0.5), script(0.5))
	audio := &recordingAudio{}
	g.SetAudio(audio)
	return g, audio
}

// place puts an object of the given kind at world position (x, y).
func place(g *Game, kind Kind, x, y float64) *WorldObject {
	spec, _ := g.cfg.Objects.Spec(kind.String())
	obj := WorldObject{
		Kind:  kind,
		X:     x,
		Y:     y,
		W:     spec.Size,
		H:     spec.Size,
		Speed: g.s.GameSpeed + spec.SpeedOffset,
	}
	if kind == KindBoss {
		obj.Speed = g.cfg.Boss.Speed
		obj.Boss = BossState{Health: g.cfg.Boss.Health, Direction: -1}
		g.s.BossActive = true
	}
	g.s.Objects = append(g.s.Objects, obj)
	return &g.s.Objects[len(g.s.Objects)-1]
}

// feet returns the y of an object of the given size standing on the ground.
func feet(g *Game, size float64) float64 {
	return g.cfg.Player.GroundY + g.cfg.Player.Height - size
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
