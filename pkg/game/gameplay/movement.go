package gameplay

import (
	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/state"
	gameworld "kickdoor/pkg/game/world"
)

func directionFor(a input.Action) world.Direction {
	switch a {
	case input.ActionMoveNorth:
		return world.North
	case input.ActionMoveSouth:
		return world.South
	case input.ActionMoveWest:
		return world.West
	case input.ActionMoveEast:
		return world.East
	default:
		return world.NoDirection
	}
}

// CanEnter checks if the player can enter a cell. If logReason is set, the
// reason for refusing is added to the message log.
func CanEnter(g *state.Game, c *world.Cell, logReason bool) bool {
	if c == nil || !c.Floor {
		if logReason {
			logMessage(g, "%s", i18n.T("BLOCKED"))
		}
		return false
	}

	if gameworld.HasClosedDoor(c) {
		if logReason {
			key := "DOOR_CLOSED"
			switch {
			case gameworld.GetDoor(c).Barricaded:
				key = "DOOR_BARRICADED"
			case gameworld.HasLockedDoor(c):
				key = "DOOR_LOCKED"
			}
			logMessage(g, "%s", i18n.T(key))
		}
		return false
	}

	// Fixtures block movement
	if gameworld.HasFixture(c) {
		if logReason {
			logMessage(g, "%s", i18n.T("BLOCKED"))
		}
		return false
	}

	return true
}

// MovePlayer moves the player one cell in dir if the cell can be entered.
// Walking into a closed door that is neither locked nor barricaded opens it
// and uses up the move. Returns true if the player moved.
func MovePlayer(g *state.Game, dir world.Direction) bool {
	from := g.CurrentCell()
	if from == nil {
		return false
	}
	to := g.Grid.GetCellRelative(from, dir)
	if to != nil && to.Floor {
		if d := gameworld.GetDoor(to); d != nil && !d.IsPassable() && !d.Locked && !d.Barricaded {
			d.Toggle(g.Player)
			logMessage(g, "%s", i18n.T("DOOR_OPENED"))
			return false
		}
	}
	if !CanEnter(g, to, true) {
		return false
	}
	to.Visited = true
	g.Player.MoveTo(to.X, to.Y, to.Z)
	return true
}
