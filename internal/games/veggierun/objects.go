package veggierun

import "github.com/vovakirdan/veggie-run/internal/core"

// Kind tags a WorldObject. Every switch over Kind in this package is exhaustive.
type Kind int

const (
	KindObstacle Kind = iota
	KindFood
	KindPet
	KindUnicorn
	KindFloatingHazard
	KindBoss
)

// String returns the YAML name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindFood:
		return "food"
	case KindPet:
		return "pet"
	case KindUnicorn:
		return "unicorn"
	case KindFloatingHazard:
		return "floating_hazard"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Row is the player's active animation row.
type Row int

const (
	RowWalk Row = iota
	RowHurt
	RowCelebrate
)

func (r Row) String() string {
	switch r {
	case RowWalk:
		return "walk"
	case RowHurt:
		return "hurt"
	case RowCelebrate:
		return "celebrate"
	default:
		return "unknown"
	}
}

// PetRow is the pet's animation row.
type PetRow int

const (
	PetSleeping PetRow = iota
	PetAwake
)

// Player is the runner. X is fixed; the world scrolls past it.
type Player struct {
	X, Y      float64
	W, H      float64
	VelocityY float64 // Positive = falling
	Jumping   bool
	Health    int
	Row       Row
	Frame     float64
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// BossState is the payload of a KindBoss object.
type BossState struct {
	Health      int
	HitCooldown int
	Direction   float64 // -1 left, +1 right
	Row         int     // Advances as health drops
}

// PetState is the payload of a KindPet object.
type PetState struct {
	Collected bool
	Row       PetRow
}

// WorldObject is anything that scrolls past the player.
// Only the payload matching Kind is meaningful.
type WorldObject struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	Speed float64
	Frame float64

	Boss        BossState
	Pet         PetState
	FoodVariant int
	Bob         float64 // Floating hazard bob phase
}

// Box returns the object's collision box.
func (o WorldObject) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// advanceFrame steps an animation counter and wraps it back to 0 once it
// reaches the sprite's column count.
func advanceFrame(frame, step float64, columns int) float64 {
	frame += step
	if frame >= float64(columns) {
		return 0
	}
	return frame
}
