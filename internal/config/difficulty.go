package config

// Interval returns the number of ticks between ordinary spawns at the given score.
// Spawns get more frequent as the score grows, never faster than MinInterval:
// max(MinInterval, BaseInterval - floor(score/ScoreDivisor)).
func (c SpawnConfig) Interval(score int) int {
	if score < 0 {
		score = 0
	}
	divisor := c.ScoreDivisor
	if divisor <= 0 {
		divisor = 1 // Prevent division by zero
	}
	interval := c.BaseInterval - score/divisor
	if interval < c.MinInterval {
		return c.MinInterval
	}
	return interval
}

// Spec returns the object spec for a kind name used in YAML.
// Unknown names return a zero spec and false.
func (c ObjectsConfig) Spec(name string) (ObjectSpec, bool) {
	switch name {
	case "obstacle":
		return c.Obstacle, true
	case "food":
		return c.Food, true
	case "pet":
		return c.Pet, true
	case "unicorn":
		return c.Unicorn, true
	case "floating_hazard":
		return c.FloatingHazard, true
	case "boss":
		return c.Boss, true
	default:
		return ObjectSpec{}, false
	}
}
