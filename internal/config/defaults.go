package config

import (
	_ "embed"
)

//go:embed defaults/veggierun.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in Veggie Run tuning.
// It mirrors defaults/veggierun.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 720,
		},
		Player: PlayerConfig{
			X:             100,
			Width:         120,
			Height:        160,
			GroundY:       433,
			MaxHealth:     100,
			FrameColumns:  5,
			AnimationStep: 0.1,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpStrength: -17,
		},
		World: WorldConfig{
			BaseSpeed:         5,
			MissedFoodPenalty: 0.5,
			DespawnX:          -100,
			BackgroundSpeed:   1.3,
			ForegroundSpeed:   1.95,
			LayerWidthFactor:  1.08,
			LayerOverlap:      5,
		},
		Spawn: SpawnConfig{
			BaseInterval:  100,
			MinInterval:   30,
			ScoreDivisor:  5,
			XJitter:       100,
			ObstacleBelow: 25,
			FoodBelow:     65,
			PetBelow:      85,
			UnicornBelow:  97,
			FoodLowChance: 0.4,
			FoodMidChance: 0.7,
			FoodVariants:  9,
		},
		Objects: ObjectsConfig{
			Obstacle:       ObjectSpec{Size: 70, FrameColumns: 1},
			Food:           ObjectSpec{Size: 70, FrameColumns: 1},
			Pet:            ObjectSpec{Size: 125, FrameColumns: 5},
			Unicorn:        ObjectSpec{Size: 120, SpeedOffset: 3, FrameColumns: 5},
			FloatingHazard: ObjectSpec{Size: 50, SpeedOffset: -1, FrameColumns: 5},
			Boss:           ObjectSpec{Size: 120, FrameColumns: 4},
			AnimationStep:  0.1,
			BobStep:        0.05,
			BobAmplitude:   2,
		},
		Reactions: ReactionsConfig{
			FoodHeal:          5,
			ObstacleDamage:    2,
			UnicornDamage:     5,
			UnicornHeal:       5,
			UnicornStompDepth: 0.75,
			HazardDamage:      3,
			BossContactDamage: 5,
			BossStompBounce:   0.5,
			BossDefeatHeal:    20,
		},
		Boss: BossConfig{
			TriggerFood:     5,
			Health:          3,
			Speed:           4,
			SpawnOffset:     200,
			StompCooldown:   180,
			ContactCooldown: 30,
		},
		Timers: TimersConfig{
			Hurt:             15,
			PetHug:           180,
			PetPause:         150,
			BossHug:          90,
			BossPause:        60,
			ConfettiInterval: 20,
		},
		Confetti: ConfettiConfig{
			Burst:   50,
			Trickle: 10,
			Gravity: 0.15,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
