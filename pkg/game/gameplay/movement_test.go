package gameplay

import (
	"testing"

	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
)

// makeRoom creates a 3x3 game with every cell walkable and the player in the middle.
func makeRoom(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame("test")
	g.Grid = world.NewGrid(3, 3, 1)
	g.Grid.ForEachCell(func(c *world.Cell) { c.Floor = true })
	if !g.Grid.SetStartCellAt(1, 1, 0) {
		t.Fatal("start cell out of bounds")
	}
	g.Player = entities.NewPlayer("Tester")
	g.Player.MoveTo(1, 1, 0)
	return g
}

func TestCanEnter_NilCell(t *testing.T) {
	g := state.NewGame("test")
	if CanEnter(g, nil, false) {
		t.Error("CanEnter(g, nil, false) = true, want false")
	}
}

func TestCanEnter_WallCell(t *testing.T) {
	g := makeRoom(t)
	cell := g.Grid.GetCell(0, 0, 0)
	cell.Floor = false
	if CanEnter(g, cell, false) {
		t.Error("CanEnter(g, wall, false) = true, want false")
	}
	if len(g.Messages) != 0 {
		t.Errorf("messages = %v, want none when logReason is false", g.Messages)
	}
}

func TestCanEnter_EmptyFloorCell(t *testing.T) {
	g := makeRoom(t)
	if !CanEnter(g, g.Grid.GetCell(0, 1, 0), false) {
		t.Error("CanEnter(g, empty floor, false) = false, want true")
	}
}

func TestCanEnter_Doors(t *testing.T) {
	tests := []struct {
		name    string
		door    func(*entities.Door)
		want    bool
		message string
	}{
		{"closed", func(*entities.Door) {}, false, "The DOOR{door} is closed."},
		{"locked", func(d *entities.Door) { d.Locked = true }, false, "The DOOR{door} is locked."},
		{"barricaded", func(d *entities.Door) { d.Barricaded = true }, false, "The DOOR{door} is barricaded."},
		{"open", func(d *entities.Door) { d.Open = true }, true, ""},
		{"destroyed", func(d *entities.Door) { d.Destroyed = true }, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := makeRoom(t)
			door := entities.NewDoor("fixtures_doors_wood_01_0")
			tt.door(door)
			g.Grid.Place(1, 0, 0, door)

			got := CanEnter(g, g.Grid.GetCell(1, 0, 0), true)
			if got != tt.want {
				t.Errorf("CanEnter() = %v, want %v", got, tt.want)
			}
			if tt.message == "" {
				if len(g.Messages) != 0 {
					t.Errorf("messages = %v, want none", g.Messages)
				}
				return
			}
			if len(g.Messages) != 1 || g.Messages[0] != tt.message {
				t.Errorf("messages = %v, want [%q]", g.Messages, tt.message)
			}
		})
	}
}

func TestCanEnter_FixtureBlocksMovement(t *testing.T) {
	g := makeRoom(t)
	g.Grid.Place(2, 1, 0, entities.NewFixture(entities.KindFurniture, "Crate", ""))
	if CanEnter(g, g.Grid.GetCell(2, 1, 0), false) {
		t.Error("CanEnter(g, cell with furniture, false) = true, want false")
	}
}

func TestMovePlayer(t *testing.T) {
	g := makeRoom(t)

	if !MovePlayer(g, world.East) {
		t.Fatal("MovePlayer(East) = false, want true")
	}
	if got, want := g.Player.Position(), (kick.Position{X: 2, Y: 1, Z: 0}); got != want {
		t.Errorf("position = %+v, want %+v", got, want)
	}
	if !g.CurrentCell().Visited {
		t.Error("entered cell not marked visited")
	}

	if MovePlayer(g, world.East) {
		t.Error("MovePlayer off the grid = true, want false")
	}
	if got, want := g.Player.Position(), (kick.Position{X: 2, Y: 1, Z: 0}); got != want {
		t.Errorf("position after blocked move = %+v, want %+v", got, want)
	}
	if len(g.Messages) != 1 || g.Messages[0] != "You can't go that way." {
		t.Errorf("messages = %v, want blocked message", g.Messages)
	}
}

func TestMovePlayer_BumpOpensUnlockedDoor(t *testing.T) {
	g := makeRoom(t)
	door := entities.NewDoor("fixtures_doors_wood_01_0")
	g.Grid.Place(1, 0, 0, door)

	if MovePlayer(g, world.North) {
		t.Fatal("MovePlayer into closed door moved the player")
	}
	if !door.Open {
		t.Fatal("bumping an unlocked door did not open it")
	}
	if door.LastToggledBy != "Tester" {
		t.Errorf("LastToggledBy = %q, want Tester", door.LastToggledBy)
	}
	if len(g.Messages) != 1 || g.Messages[0] != "You open the DOOR{door}." {
		t.Errorf("messages = %v, want door opened message", g.Messages)
	}

	if !MovePlayer(g, world.North) {
		t.Fatal("MovePlayer through open door = false")
	}
	if got, want := g.Player.Position(), (kick.Position{X: 1, Y: 0, Z: 0}); got != want {
		t.Errorf("position = %+v, want %+v", got, want)
	}
}

func TestMovePlayer_LockedDoorStaysShut(t *testing.T) {
	g := makeRoom(t)
	door := entities.NewDoor("fixtures_doors_wood_01_0")
	door.Locked = true
	g.Grid.Place(1, 0, 0, door)

	if MovePlayer(g, world.North) {
		t.Error("MovePlayer through locked door = true")
	}
	if door.Open {
		t.Error("locked door opened on bump")
	}
}
