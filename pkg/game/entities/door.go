// Package entities contains the world objects of the kick sandbox: doors,
// fixtures and the player character. Each implements the capabilities the
// kick rules query.
package entities

import (
	"github.com/google/uuid"

	"kickdoor/pkg/game/kick"
)

var (
	_ kick.Door           = (*Door)(nil)
	_ kick.Lockable       = (*Door)(nil)
	_ kick.Destructible   = (*Door)(nil)
	_ kick.Barricadable   = (*Door)(nil)
	_ kick.HealthReporter = (*Door)(nil)
	_ kick.Toggler        = (*Door)(nil)
)

// Door is a door placed in a world cell.
type Door struct {
	id     string
	Sprite string

	Locked     bool
	Open       bool
	Barricaded bool
	Destroyed  bool

	health    kick.Optional[float64]
	maxHealth kick.Optional[float64]

	// Name of whoever last opened or closed the door
	LastToggledBy string
}

// NewDoor creates a closed, unlocked door with the given sprite and no health data
func NewDoor(sprite string) *Door {
	return &Door{
		id:     uuid.NewString(),
		Sprite: sprite,
	}
}

// SetHealth records the door's current and maximum health
func (d *Door) SetHealth(current, maximum float64) {
	d.health = kick.Some(current)
	d.maxHealth = kick.Some(maximum)
}

// ObjectKind implements kick.Object
func (d *Door) ObjectKind() string { return kick.KindDoor }

// ObjectID implements kick.Identified
func (d *Door) ObjectID() string { return d.id }

// SpriteName implements kick.Door
func (d *Door) SpriteName() string { return d.Sprite }

func (d *Door) IsLocked() bool                    { return d.Locked }
func (d *Door) SetLocked(locked bool)             { d.Locked = locked }
func (d *Door) IsBarricaded() bool                { return d.Barricaded }
func (d *Door) IsDestroyed() bool                 { return d.Destroyed }
func (d *Door) Health() kick.Optional[float64]    { return d.health }
func (d *Door) MaxHealth() kick.Optional[float64] { return d.maxHealth }

// Toggle opens a closed door or closes an open one. Locked, barricaded and
// destroyed doors don't move.
func (d *Door) Toggle(actor kick.Agent) {
	if d.Locked || d.Barricaded || d.Destroyed {
		return
	}
	d.Open = !d.Open
	if named, ok := actor.(interface{ DisplayName() string }); ok {
		d.LastToggledBy = named.DisplayName()
	}
}

// IsPassable returns true if the door can be walked through
func (d *Door) IsPassable() bool {
	return d.Open || d.Destroyed
}

// Archetype returns the door's kick archetype
func (d *Door) Archetype() kick.Archetype {
	return kick.ClassifySprite(d.Sprite)
}
