package entities

import (
	"sort"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"kickdoor/pkg/game/kick"
)

var (
	_ kick.Agent       = (*Player)(nil)
	_ kick.TraitHolder = (*Player)(nil)
	_ kick.SkillHolder = (*Player)(nil)
	_ kick.XPReceiver  = (*Player)(nil)
)

// Player is the character controlled by the user
type Player struct {
	id   string
	Name string
	pos  kick.Position

	traits mapset.Set[kick.Trait]
	skills map[kick.Skill]int
	xp     map[kick.Skill]int
}

// NewPlayer creates a player with Strength and Fitness at level 0 and no traits
func NewPlayer(name string) *Player {
	return NewPlayerWithSkills(name, kick.SkillStrength, kick.SkillFitness)
}

// NewPlayerWithSkills creates a player that only knows the given skills
func NewPlayerWithSkills(name string, skills ...kick.Skill) *Player {
	p := &Player{
		id:     uuid.NewString(),
		Name:   name,
		traits: mapset.New[kick.Trait](),
		skills: make(map[kick.Skill]int, len(skills)),
		xp:     make(map[kick.Skill]int, len(skills)),
	}
	for _, s := range skills {
		p.skills[s] = 0
		p.xp[s] = 0
	}
	return p
}

// ObjectID returns the player's identifier
func (p *Player) ObjectID() string { return p.id }

// DisplayName returns the name shown in messages
func (p *Player) DisplayName() string { return p.Name }

// Position implements kick.Agent
func (p *Player) Position() kick.Position { return p.pos }

// MoveTo places the player at the given position
func (p *Player) MoveTo(x, y, z int) {
	p.pos = kick.Position{X: x, Y: y, Z: z}
}

// AddTrait gives the player a trait
func (p *Player) AddTrait(t kick.Trait) { p.traits.Put(t) }

// RemoveTrait takes a trait away
func (p *Player) RemoveTrait(t kick.Trait) { p.traits.Remove(t) }

// HasTrait implements kick.TraitHolder
func (p *Player) HasTrait(t kick.Trait) bool { return p.traits.Has(t) }

// Traits returns the player's traits sorted by name
func (p *Player) Traits() []kick.Trait {
	traits := make([]kick.Trait, 0, p.traits.Size())
	p.traits.Each(func(t kick.Trait) {
		traits = append(traits, t)
	})
	sort.Slice(traits, func(i, j int) bool { return traits[i] < traits[j] })
	return traits
}

// SetSkillLevel sets a skill level, teaching the skill if needed
func (p *Player) SetSkillLevel(s kick.Skill, level int) {
	if level < 0 {
		level = 0
	}
	p.skills[s] = level
	if _, ok := p.xp[s]; !ok {
		p.xp[s] = 0
	}
}

// SkillLevel implements kick.SkillHolder
func (p *Player) SkillLevel(s kick.Skill) kick.Optional[int] {
	if lvl, ok := p.skills[s]; ok {
		return kick.Some(lvl)
	}
	return kick.None[int]()
}

// AddXP implements kick.XPReceiver. Skills the player doesn't know take no XP.
func (p *Player) AddXP(s kick.Skill, amount int) bool {
	if _, ok := p.xp[s]; !ok {
		return false
	}
	p.xp[s] += amount
	return true
}

// XP returns the experience accumulated for a skill
func (p *Player) XP(s kick.Skill) int {
	return p.xp[s]
}
