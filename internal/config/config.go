// Package config provides YAML-based tuning for the runner simulation.
// Every constant the simulation reads lives here so it can be adjusted
// without touching game code.
package config

// RunnerConfig contains all tuning for Veggie Run.
type RunnerConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Reactions ReactionsConfig `yaml:"reactions"`
	Boss      BossConfig      `yaml:"boss"`
	Timers    TimersConfig    `yaml:"timers"`
	Confetti  ConfettiConfig  `yaml:"confetti"`
}

// ScreenConfig is the logical playfield size in world pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the runner's body and animation.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GroundY       float64 `yaml:"ground_y"` // Top of the player when standing
	MaxHealth     int     `yaml:"max_health"`
	FrameColumns  int     `yaml:"frame_columns"`
	AnimationStep float64 `yaml:"animation_step"`
}

// PhysicsConfig defines vertical kinematics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative = up
}

// WorldConfig defines scrolling, speed ramp and despawn.
type WorldConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	MissedFoodPenalty float64 `yaml:"missed_food_penalty"`
	DespawnX          float64 `yaml:"despawn_x"`
	BackgroundSpeed   float64 `yaml:"background_speed"`
	ForegroundSpeed   float64 `yaml:"foreground_speed"`
	LayerWidthFactor  float64 `yaml:"layer_width_factor"` // Layer span = screen width * factor
	LayerOverlap      float64 `yaml:"layer_overlap"`
}

// SpawnConfig defines the spawn schedule and kind distribution.
type SpawnConfig struct {
	BaseInterval int     `yaml:"base_interval"`
	MinInterval  int     `yaml:"min_interval"`
	ScoreDivisor int     `yaml:"score_divisor"`
	XJitter      float64 `yaml:"x_jitter"`
	// Cumulative upper bounds of the kind draw over [0,100).
	ObstacleBelow float64 `yaml:"obstacle_below"`
	FoodBelow     float64 `yaml:"food_below"`
	PetBelow      float64 `yaml:"pet_below"`
	UnicornBelow  float64 `yaml:"unicorn_below"`
	// Food altitude bands.
	FoodLowChance float64 `yaml:"food_low_chance"`
	FoodMidChance float64 `yaml:"food_mid_chance"` // Cumulative with low
	FoodVariants  int     `yaml:"food_variants"`
}

// ObjectSpec is the size, speed offset and sprite width of one object kind.
type ObjectSpec struct {
	Size         float64 `yaml:"size"`
	SpeedOffset  float64 `yaml:"speed_offset"`
	FrameColumns int     `yaml:"frame_columns"`
}

// ObjectsConfig holds per-kind specs.
type ObjectsConfig struct {
	Obstacle       ObjectSpec `yaml:"obstacle"`
	Food           ObjectSpec `yaml:"food"`
	Pet            ObjectSpec `yaml:"pet"`
	Unicorn        ObjectSpec `yaml:"unicorn"`
	FloatingHazard ObjectSpec `yaml:"floating_hazard"`
	Boss           ObjectSpec `yaml:"boss"`
	AnimationStep  float64    `yaml:"animation_step"`
	BobStep        float64    `yaml:"bob_step"`
	BobAmplitude   float64    `yaml:"bob_amplitude"`
}

// ReactionsConfig defines collision damages and heals.
type ReactionsConfig struct {
	FoodHeal          int     `yaml:"food_heal"`
	ObstacleDamage    int     `yaml:"obstacle_damage"`
	UnicornDamage     int     `yaml:"unicorn_damage"`
	UnicornHeal       int     `yaml:"unicorn_heal"`
	UnicornStompDepth float64 `yaml:"unicorn_stomp_depth"` // Fraction of unicorn height
	HazardDamage      int     `yaml:"hazard_damage"`
	BossContactDamage int     `yaml:"boss_contact_damage"`
	BossStompBounce   float64 `yaml:"boss_stomp_bounce"` // Multiplier on jump strength
	BossDefeatHeal    int     `yaml:"boss_defeat_heal"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	TriggerFood     int     `yaml:"trigger_food"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Distance from the right edge
	StompCooldown   int     `yaml:"stomp_cooldown"`
	ContactCooldown int     `yaml:"contact_cooldown"`
}

// TimersConfig defines the countdowns, in ticks.
type TimersConfig struct {
	Hurt             int `yaml:"hurt"`
	PetHug           int `yaml:"pet_hug"`
	PetPause         int `yaml:"pet_pause"`
	BossHug          int `yaml:"boss_hug"`
	BossPause        int `yaml:"boss_pause"`
	ConfettiInterval int `yaml:"confetti_interval"`
}

// ConfettiConfig defines the celebration particles.
type ConfettiConfig struct {
	Burst   int     `yaml:"burst"`
	Trickle int     `yaml:"trickle"`
	Gravity float64 `yaml:"gravity"`
}
