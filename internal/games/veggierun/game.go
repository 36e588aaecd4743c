// Package veggierun implements Veggie Run, an endless runner where the
// player eats veggies, hugs sleeping pets, bounces off unicorns and stomps
// a boss every few veggies.
//
// The simulation works in a fixed 1200x720 pixel world and is advanced one
// tick at a time by Step. It never reads the clock: the platform decides how
// often to call Step.
package veggierun

import (
	"math/rand"

	"github.com/vovakirdan/veggie-run/internal/config"
	"github.com/vovakirdan/veggie-run/internal/core"
	"github.com/vovakirdan/veggie-run/internal/registry"
)

// GameID is the registry key of this game.
const GameID = "veggierun"

// Game runs one Veggie Run session and restarts it on demand.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	s       Session
	held    bool // Player put the run on hold

	spawner  *Spawner
	emitter  *ConfettiEmitter
	resolver *Resolver
	audio    core.AudioSink

	// Set by NewWith; Reset then skips loading config and seeding.
	fixed       bool
	spawnRng    Rand
	confettiRng Rand
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game that loads its tuning on Reset.
func New() *Game {
	return &Game{audio: core.NopAudio{}}
}

// NewWith creates a game with fixed tuning and random sources, ready to play.
// Spawns and confetti draw from separate streams so cosmetic effects never
// shift spawn decisions.
func NewWith(cfg config.RunnerConfig, spawn, confetti Rand) *Game {
	g := &Game{
		cfg:         cfg,
		audio:       core.NopAudio{},
		fixed:       true,
		spawnRng:    spawn,
		confettiRng: confetti,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Veggie Run"
}

// SetAudio routes sound and music cues to sink. Nil silences the game.
func (g *Game) SetAudio(sink core.AudioSink) {
	if sink == nil {
		sink = core.NopAudio{}
	}
	g.audio = sink
	if g.resolver != nil {
		g.resolver.audio = sink
	}
}

// Config returns the tuning in use.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reset loads tuning, seeds the random sources and starts a fresh session.
// It does not cue music; the first jump does.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		g.cfg = cfg
		g.spawnRng = rand.New(rand.NewSource(runtime.Seed))
		g.confettiRng = rand.New(rand.NewSource(runtime.Seed + 1))
	}

	g.spawner = NewSpawner(&g.cfg, g.spawnRng)
	g.emitter = NewConfettiEmitter(&g.cfg, g.confettiRng)
	g.resolver = NewResolver(&g.cfg, g.audio, g.emitter)
	g.held = false
	g.s = newSession(&g.cfg)
}

// Restart throws the current session away and starts over with music.
func (g *Game) Restart() {
	g.s = newSession(&g.cfg)
	g.spawner.Reset()
	g.held = false
	g.audio.Music(core.MusicRestart)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.s.GameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle hold toggle
	if in.Has(core.ActionPause) {
		g.held = !g.held
	}
	if g.held {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.jump()
	}

	g.update()
	return core.StepResult{State: g.State()}
}

// jump is honored only from the ground.
func (g *Game) jump() {
	if !g.s.Player.Jump(g.cfg.Physics.JumpStrength) {
		return
	}
	g.audio.Music(core.MusicStart)
	g.audio.PlaySound(core.SoundJump)
}

// update runs one simulation tick in a fixed order.
func (g *Game) update() {
	s := &g.s
	cfg := &g.cfg
	s.Ticks++

	// A celebration freezes the world; only animations keep playing.
	if s.PauseTimer > 0 {
		s.tickPaused(cfg)
		return
	}

	s.tickHurt()
	s.endCelebration()

	s.Layers.Scroll(cfg.World, cfg.Screen.Width)

	s.Player.Integrate(cfg.Physics.Gravity, cfg.Player.GroundY)
	s.Player.Frame = advanceFrame(s.Player.Frame, cfg.Player.AnimationStep, cfg.Player.FrameColumns)

	if s.tickHug(cfg.Timers.ConfettiInterval) {
		s.Confetti = append(s.Confetti, g.emitter.Emit(cfg.Confetti.Trickle)...)
	}
	s.Confetti = updateConfetti(s.Confetti, cfg.Screen.Height+50)

	if BossDue(s.FoodCollected, s.BossActive, cfg.Boss.TriggerFood) {
		s.BossActive = true
		s.Objects = append(s.Objects, g.spawner.SpawnBoss())
	}

	if !s.BossActive {
		if obj, ok := g.spawner.TrySpawn(s.Score, s.GameSpeed); ok {
			s.Objects = append(s.Objects, obj)
		}
	}

	s.sweep(cfg, g.resolver)

	if s.Player.Health <= 0 {
		s.GameOver = true
		g.audio.Music(core.MusicStop)
		g.audio.PlaySound(core.SoundGameOver)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.s.Score,
		Veggies:        g.s.FoodCollected,
		BossesDefeated: g.s.BossesDefeated,
		BossActive:     g.s.BossActive,
		Ticks:          g.s.Ticks,
		GameOver:       g.s.GameOver,
		Paused:         g.held,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
