// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
	gameworld "kickdoor/pkg/game/world"
)

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(cell *world.Cell) rune {
	if cell == nil || (!cell.Floor && !cell.HasObjects()) {
		return '#'
	}
	if d := gameworld.GetDoor(cell); d != nil {
		switch {
		case d.Destroyed:
			return 'X'
		case d.Barricaded:
			return 'B'
		case d.Open:
			return 'O'
		case d.Locked:
			return 'L'
		default:
			return 'D'
		}
	}
	if cell.FindObject(entities.KindWindow) != nil {
		return 'W'
	}
	if gameworld.HasFixture(cell) {
		return 'F'
	}
	return '.'
}

// DumpMap writes every level of the grid, one character per cell, with the
// player drawn as '@'.
func DumpMap(w io.Writer, g *state.Game) error {
	var pos kick.Position
	if g.Player != nil {
		pos = g.Player.Position()
	}
	for z := range g.Grid.Levels() {
		if _, err := fmt.Fprintf(w, "level %d\n", z); err != nil {
			return err
		}
		for y := range g.Grid.Height() {
			line := make([]rune, 0, g.Grid.Width())
			for x := range g.Grid.Width() {
				if g.Player != nil && pos == (kick.Position{X: x, Y: y, Z: z}) {
					line = append(line, '@')
					continue
				}
				line = append(line, cellSymbol(g.Grid.GetCell(x, y, z)))
			}
			if _, err := fmt.Fprintln(w, string(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// DoorReport is one row of the door table
type DoorReport struct {
	X, Y, Z   int
	Sprite    string
	Archetype kick.Archetype
	Kickable  bool
	Chance    float64
	XP        int
}

// Doors lists every door in the grid with the player's odds of kicking it,
// ordered by level, row and column.
func Doors(g *state.Game, rules kick.Rules) []DoorReport {
	var reports []DoorReport
	g.Grid.ForEachCell(func(c *world.Cell) {
		d := gameworld.GetDoor(c)
		if d == nil {
			return
		}
		r := DoorReport{
			X: c.X, Y: c.Y, Z: c.Z,
			Sprite:    d.Sprite,
			Archetype: d.Archetype(),
			Kickable:  rules.Kickable(d),
			XP:        kick.XPReward(d.Archetype()),
		}
		if r.Kickable && g.Player != nil {
			r.Chance = kick.SuccessChance(d, g.Player)
		}
		reports = append(reports, r)
	})
	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i], reports[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return reports
}

// WriteDoorReport writes Doors as an aligned table
func WriteDoorReport(w io.Writer, g *state.Game, rules kick.Rules) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tARCHETYPE\tKICKABLE\tCHANCE\tXP\tSPRITE")
	for _, r := range Doors(g, rules) {
		fmt.Fprintf(tw, "%d,%d,%d\t%s\t%t\t%.1f%%\t%d\t%s\n",
			r.X, r.Y, r.Z, r.Archetype, r.Kickable, r.Chance*100, r.XP, r.Sprite)
	}
	return tw.Flush()
}
