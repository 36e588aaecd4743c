package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search path.
const FileName = "veggierun.yaml"

// objectKinds lists the YAML names of every object spec, in validation order.
var objectKinds = []string{"obstacle", "food", "pet", "unicorn", "floating_hazard", "boss"}

// LoadRunner loads Veggie Run configuration.
// Search order: customPath -> ~/.veggierun/configs/veggierun.yaml -> ./configs/veggierun.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".veggierun", "configs", filename)
}

// Validate checks that the tuning keeps the simulation well-formed.
// It reports every problem found, not just the first.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.GroundY > 0 && c.Player.GroundY+c.Player.Height <= c.Screen.Height,
		"player: ground_y %g must keep the player on screen", c.Player.GroundY)
	check(c.Player.MaxHealth > 0, "player: max_health must be positive")
	check(c.Player.FrameColumns > 0, "player: frame_columns must be positive")
	check(c.Physics.Gravity > 0, "physics: gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.JumpStrength < 0, "physics: jump_strength must be negative (up), got %g", c.Physics.JumpStrength)
	check(c.World.BaseSpeed > 0, "world: base_speed must be positive")
	check(c.World.LayerWidthFactor >= 1, "world: layer_width_factor must be at least 1")
	check(c.Spawn.MinInterval > 0 && c.Spawn.BaseInterval >= c.Spawn.MinInterval,
		"spawn: need 0 < min_interval <= base_interval")
	check(c.Spawn.ScoreDivisor > 0, "spawn: score_divisor must be positive")
	check(0 <= c.Spawn.ObstacleBelow &&
		c.Spawn.ObstacleBelow <= c.Spawn.FoodBelow &&
		c.Spawn.FoodBelow <= c.Spawn.PetBelow &&
		c.Spawn.PetBelow <= c.Spawn.UnicornBelow &&
		c.Spawn.UnicornBelow <= 100,
		"spawn: kind bounds must be ascending within [0,100]")
	check(0 <= c.Spawn.FoodLowChance && c.Spawn.FoodLowChance <= c.Spawn.FoodMidChance && c.Spawn.FoodMidChance <= 1,
		"spawn: food band chances must be ascending within [0,1]")
	check(c.Spawn.FoodVariants > 0, "spawn: food_variants must be positive")
	for _, kind := range objectKinds {
		spec, _ := c.Objects.Spec(kind)
		check(spec.Size > 0, "objects.%s: size must be positive", kind)
		check(spec.FrameColumns > 0, "objects.%s: frame_columns must be positive", kind)
	}
	check(c.Boss.TriggerFood > 0, "boss: trigger_food must be positive")
	check(c.Boss.Health > 0, "boss: health must be positive")
	check(c.Timers.ConfettiInterval > 0, "timers: confetti_interval must be positive")
	check(c.Timers.Hurt > 0, "timers: hurt must be positive, got %d", c.Timers.Hurt)
	check(c.Timers.PetHug >= 0 && c.Timers.PetPause >= 0 && c.Timers.BossHug >= 0 && c.Timers.BossPause >= 0,
		"timers: hug and pause durations must not be negative")
	check(c.Confetti.Burst >= 0 && c.Confetti.Trickle >= 0,
		"confetti: burst and trickle must not be negative")

	return errors.Join(errs...)
}
