package veggierun

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Player   Player
	Objects  []WorldObject
	Confetti []Confetti
	Layers   Layers
	UI       UIState
}

// UIState carries the HUD readouts and banner flags.
type UIState struct {
	Health        int
	MaxHealth     int
	GameSpeed     float64
	Score         int
	FoodCollected int
	BossActive    bool
	BossHealth    int
	BossMaxHealth int
	HugActive     bool
	HugTimer      int
	HugAnimFrame  int
	HurtTimer     int
	PauseTimer    int
	SpawnTimer    int
	GameOver      bool
	Held          bool
}

// Snapshot copies the current session. Later steps do not affect it.
func (g *Game) Snapshot() Snapshot {
	s := &g.s
	snap := Snapshot{
		Player:   s.Player,
		Objects:  append([]WorldObject(nil), s.Objects...),
		Confetti: append([]Confetti(nil), s.Confetti...),
		Layers:   s.Layers,
		UI: UIState{
			Health:        s.Player.Health,
			MaxHealth:     g.cfg.Player.MaxHealth,
			GameSpeed:     s.GameSpeed,
			Score:         s.Score,
			FoodCollected: s.FoodCollected,
			BossActive:    s.BossActive,
			BossMaxHealth: g.cfg.Boss.Health,
			HugActive:     s.HugActive,
			HugTimer:      s.HugTimer,
			HugAnimFrame:  s.HugAnimFrame,
			HurtTimer:     s.HurtTimer,
			PauseTimer:    s.PauseTimer,
			GameOver:      s.GameOver,
			Held:          g.held,
		},
	}
	if g.spawner != nil {
		snap.UI.SpawnTimer = g.spawner.Timer()
	}
	if boss, ok := s.Boss(); ok {
		snap.UI.BossHealth = boss.Boss.Health
	}
	return snap
}
