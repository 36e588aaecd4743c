package veggierun

import (
	"math"
	"testing"

	"github.com/vovakirdan/veggie-run/internal/config"
)

func TestPickKind(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(&cfg, script(0))

	tests := []struct {
		roll float64
		want Kind
	}{
		{0, KindObstacle},
		{24.99, KindObstacle},
		{25, KindFood},
		{64.99, KindFood},
		{65, KindPet},
		{84.99, KindPet},
		{85, KindUnicorn},
		{96.99, KindUnicorn},
		{97, KindFloatingHazard},
		{99.99, KindFloatingHazard},
	}

	for _, tc := range tests {
		if got := s.PickKind(tc.roll); got != tc.want {
			t.Errorf("PickKind(%g) = %v, expected %v", tc.roll, got, tc.want)
		}
	}
}

func TestSpawnParameters(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	foot := func(size float64) float64 { return cfg.Player.GroundY + cfg.Player.Height - size }

	tests := []struct {
		name      string
		draws     []float64
		wantKind  Kind
		wantSize  float64
		wantSpeed float64
		wantX     float64
		wantY     float64
	}{
		{"obstacle", []float64{0.10, 0.5}, KindObstacle, 70, 5, 1250, foot(70)},
		{"food low", []float64{0.30, 0.2, 0.5, 0.0, 0.5}, KindFood, 70, 5, 1200, foot(70) - 25},
		{"food mid", []float64{0.30, 0.5, 0.5, 0.0, 0.5}, KindFood, 70, 5, 1200, foot(70) - 110},
		{"food high", []float64{0.30, 0.9, 0.5, 0.0, 0.5}, KindFood, 70, 5, 1200, foot(70) - 180},
		{"pet", []float64{0.70, 0.25}, KindPet, 125, 5, 1225, foot(125)},
		{"unicorn", []float64{0.90, 1.0 - 1e-12}, KindUnicorn, 120, 8, 1300, foot(120)},
		{"floating hazard", []float64{0.98, 0}, KindFloatingHazard, 50, 4, 1200, foot(50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(&cfg, script(tc.draws...))
			obj := s.Spawn(5)

			if obj.Kind != tc.wantKind {
				t.Fatalf("kind = %v, expected %v", obj.Kind, tc.wantKind)
			}
			if obj.W != tc.wantSize || obj.H != tc.wantSize {
				t.Errorf("size = %gx%g, expected %g", obj.W, obj.H, tc.wantSize)
			}
			if !approx(obj.Speed, tc.wantSpeed) {
				t.Errorf("speed = %g, expected %g", obj.Speed, tc.wantSpeed)
			}
			if math.Abs(obj.X-tc.wantX) > 1e-6 {
				t.Errorf("x = %g, expected %g", obj.X, tc.wantX)
			}
			if !approx(obj.Y, tc.wantY) {
				t.Errorf("y = %g, expected %g", obj.Y, tc.wantY)
			}
		})
	}
}

func TestSpawnFoodVariantAndPetRow(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	food := NewSpawner(&cfg, script(0.30, 0.1, 0.1, 0.1, 0.5)).Spawn(5)
	if food.FoodVariant != 4 {
		t.Errorf("food variant = %d, expected 4", food.FoodVariant)
	}

	pet := NewSpawner(&cfg, script(0.70, 0.1)).Spawn(5)
	if pet.Pet.Row != PetSleeping || pet.Pet.Collected {
		t.Errorf("new pet should be asleep and uncollected: %+v", pet.Pet)
	}
}

func TestSpawnTreatsNaNAsZero(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(&cfg, script(math.NaN()))

	obj := s.Spawn(5)
	if obj.Kind != KindObstacle {
		t.Errorf("NaN roll should pick the first kind, got %v", obj.Kind)
	}
	if obj.X != cfg.Screen.Width {
		t.Errorf("NaN jitter should be 0, got x=%g", obj.X)
	}
}

func TestTrySpawnInterval(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(&cfg, script(0.5))

	for i := 1; i <= 100; i++ {
		if _, ok := s.TrySpawn(0, 5); ok {
			t.Fatalf("spawned early at tick %d", i)
		}
	}
	if _, ok := s.TrySpawn(0, 5); !ok {
		t.Fatal("expected a spawn on tick 101")
	}
	if s.Timer() != 0 {
		t.Errorf("timer = %d after spawn, expected 0", s.Timer())
	}

	// At score 350 the interval bottoms out at 30
	for i := 1; i <= 30; i++ {
		if _, ok := s.TrySpawn(350, 5); ok {
			t.Fatalf("spawned early at tick %d", i)
		}
	}
	if _, ok := s.TrySpawn(350, 5); !ok {
		t.Fatal("expected a spawn on tick 31")
	}
}

func TestSpawnBoss(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	boss := NewSpawner(&cfg, script(0.5)).SpawnBoss()

	if boss.Kind != KindBoss {
		t.Fatalf("kind = %v", boss.Kind)
	}
	if boss.X != 1000 || boss.Y != 473 || boss.W != 120 || boss.H != 120 {
		t.Errorf("boss box = %+v", boss.Box())
	}
	if boss.Speed != 4 || boss.Boss.Direction != -1 {
		t.Errorf("boss motion: speed=%g dir=%g", boss.Speed, boss.Boss.Direction)
	}
	if boss.Boss.Health != 3 || boss.Boss.Row != 0 || boss.Boss.HitCooldown != 0 {
		t.Errorf("boss state = %+v", boss.Boss)
	}
}

func TestBossDue(t *testing.T) {
	tests := []struct {
		food   int
		active bool
		want   bool
	}{
		{0, false, false},
		{4, false, false},
		{5, false, true},
		{7, false, true},
		{5, true, false},
	}

	for _, tc := range tests {
		if got := BossDue(tc.food, tc.active, 5); got != tc.want {
			t.Errorf("BossDue(%d, %v) = %v, expected %v", tc.food, tc.active, got, tc.want)
		}
	}
}
