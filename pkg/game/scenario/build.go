package scenario

import (
	"errors"
	"fmt"
	"strings"

	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
)

// Largest grid a scenario may ask for. The grid is allocated up front.
const (
	MaxSide   = 512
	MaxLevels = 16
)

var (
	ErrNoPlayer    = errors.New("scenario has no player")
	ErrBadSize     = errors.New("scenario size out of range")
	ErrOutOfBounds = errors.New("position outside scenario")
)

var knownTraits = []kick.Trait{
	kick.TraitAthletic,
	kick.TraitStout,
	kick.TraitStrong,
	kick.TraitBrawler,
	kick.TraitBrave,
	kick.TraitFeeble,
	kick.TraitWeak,
}

// Build turns s into a playable game. Without explicit floors every
// non-perimeter cell is walkable. Door cells are always walkable once open.
func Build(s *Scenario) (*state.Game, error) {
	if s == nil {
		return nil, errors.New("nil scenario")
	}
	levels := s.Levels
	if levels == 0 {
		levels = 1
	}
	if s.Width <= 0 || s.Height <= 0 || levels < 0 ||
		s.Width > MaxSide || s.Height > MaxSide || levels > MaxLevels {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrBadSize, s.Width, s.Height, levels)
	}
	if s.Player == nil {
		return nil, ErrNoPlayer
	}

	g := state.NewGame(s.Name)
	g.Grid = world.NewGrid(s.Width, s.Height, levels)

	if len(s.Floors) == 0 {
		g.Grid.ForEachCell(func(c *world.Cell) {
			if c.X > 0 && c.Y > 0 && c.X < s.Width-1 && c.Y < s.Height-1 {
				c.Floor = true
			}
		})
	}
	for _, r := range s.Floors {
		if err := markFloor(g.Grid, r); err != nil {
			return nil, err
		}
	}

	for _, d := range s.Doors {
		door := entities.NewDoor(d.Sprite)
		door.Locked = d.Locked
		door.Open = d.Open
		door.Barricaded = d.Barricaded
		door.Destroyed = d.Destroyed
		if d.Health != nil && d.MaxHealth != nil {
			door.SetHealth(*d.Health, *d.MaxHealth)
		}
		if !g.Grid.Place(d.X, d.Y, d.Z, door) {
			return nil, fmt.Errorf("door %q at %d,%d,%d: %w", d.Sprite, d.X, d.Y, d.Z, ErrOutOfBounds)
		}
		g.Grid.MarkAsFloor(d.X, d.Y, d.Z)
	}

	for _, f := range s.Fixtures {
		if !g.Grid.Place(f.X, f.Y, f.Z, entities.NewFixture(f.Kind, f.Name, f.Sprite)) {
			return nil, fmt.Errorf("fixture %q at %d,%d,%d: %w", f.Name, f.X, f.Y, f.Z, ErrOutOfBounds)
		}
	}

	p := s.Player
	if !g.Grid.SetStartCellAt(p.X, p.Y, p.Z) {
		return nil, fmt.Errorf("player at %d,%d,%d: %w", p.X, p.Y, p.Z, ErrOutOfBounds)
	}
	g.Grid.MarkAsFloor(p.X, p.Y, p.Z)
	g.Player = buildPlayer(p)

	if msg := g.Grid.Validate(); msg != "" {
		return nil, errors.New(msg)
	}
	return g, nil
}

func markFloor(g *world.Grid, r Rect) error {
	x1, x2 := min(r.X1, r.X2), max(r.X1, r.X2)
	y1, y2 := min(r.Y1, r.Y2), max(r.Y1, r.Y2)
	if !g.IsValidPosition(x1, y1, r.Z) || !g.IsValidPosition(x2, y2, r.Z) {
		return fmt.Errorf("floor %d,%d-%d,%d on level %d: %w", r.X1, r.Y1, r.X2, r.Y2, r.Z, ErrOutOfBounds)
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.MarkAsFloor(x, y, r.Z)
		}
	}
	return nil
}

func buildPlayer(spec *PlayerSpec) *entities.Player {
	var p *entities.Player
	if spec.NoSkills {
		p = entities.NewPlayerWithSkills(spec.Name)
	} else {
		p = entities.NewPlayer(spec.Name)
	}
	for name, level := range spec.Skills {
		p.SetSkillLevel(skillNamed(name), level)
	}
	for _, t := range spec.Traits {
		p.AddTrait(traitNamed(t))
	}
	p.MoveTo(spec.X, spec.Y, spec.Z)
	return p
}

func skillNamed(name string) kick.Skill {
	for _, s := range []kick.Skill{kick.SkillStrength, kick.SkillFitness} {
		if strings.EqualFold(string(s), name) {
			return s
		}
	}
	return kick.Skill(name)
}

func traitNamed(name string) kick.Trait {
	for _, t := range knownTraits {
		if strings.EqualFold(string(t), name) {
			return t
		}
	}
	return kick.Trait(name)
}
