// Package world provides game-specific views over the engine grid: what a
// cell contains from the game's point of view, and the kick.World adapter.
package world

import (
	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/kick"
)

// KickView exposes a grid to the kick rules
type KickView struct {
	Grid *world.Grid
}

// Objects implements kick.World
func (v KickView) Objects(x, y, z int) []kick.Object {
	objs := v.Grid.GetCell(x, y, z).Objects()
	if len(objs) == 0 {
		return nil
	}
	out := make([]kick.Object, len(objs))
	for i, o := range objs {
		out[i] = o
	}
	return out
}

// GetDoor returns the first door in the cell, or nil
func GetDoor(cell *world.Cell) *entities.Door {
	for _, o := range cell.Objects() {
		if d, ok := o.(*entities.Door); ok {
			return d
		}
	}
	return nil
}

// HasDoor returns true if this cell contains a door
func HasDoor(cell *world.Cell) bool {
	return GetDoor(cell) != nil
}

// HasLockedDoor returns true if this cell has a locked door
func HasLockedDoor(cell *world.Cell) bool {
	d := GetDoor(cell)
	return d != nil && d.Locked
}

// HasClosedDoor returns true if this cell has a door that can't be walked through
func HasClosedDoor(cell *world.Cell) bool {
	d := GetDoor(cell)
	return d != nil && !d.IsPassable()
}

// HasFixture returns true if this cell contains a fixture of any kind
func HasFixture(cell *world.Cell) bool {
	for _, o := range cell.Objects() {
		if _, ok := o.(*entities.Fixture); ok {
			return true
		}
	}
	return false
}
