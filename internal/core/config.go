package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to the terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score          int  // Veggies eaten this run
	Veggies        int  // Veggies since the last boss fight
	BossesDefeated int  // Bosses beaten this run
	BossActive     bool // Whether a boss is on the field
	Ticks          int  // Simulation ticks since restart
	GameOver       bool // Whether the run has ended
	Paused         bool // Whether the player put the run on hold
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
