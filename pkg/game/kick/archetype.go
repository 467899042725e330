package kick

import "strings"

// Archetype is a coarse door category derived from the sprite name.
type Archetype int

const (
	ArchetypeUnknown Archetype = iota
	ArchetypeMetalReinforced
	ArchetypeMetal
	ArchetypeGarage
	ArchetypeGlass
	ArchetypeOffice
	ArchetypeWood
	ArchetypeBarn
	ArchetypeGeneric
)

// String returns the archetype tag
func (a Archetype) String() string {
	switch a {
	case ArchetypeMetalReinforced:
		return "metal_reinforced"
	case ArchetypeMetal:
		return "metal"
	case ArchetypeGarage:
		return "garage"
	case ArchetypeGlass:
		return "glass"
	case ArchetypeOffice:
		return "office"
	case ArchetypeWood:
		return "wood"
	case ArchetypeBarn:
		return "barn"
	case ArchetypeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

type archetypeRule struct {
	prefix    string
	contains  string // optional extra substring
	archetype Archetype
}

// archetypeRules is evaluated top to bottom; the first match wins.
var archetypeRules = []archetypeRule{
	{prefix: "fixtures_doors_metal", contains: "reinforced", archetype: ArchetypeMetalReinforced},
	{prefix: "fixtures_doors_metal", archetype: ArchetypeMetal},
	{prefix: "fixtures_doors_garage", archetype: ArchetypeGarage},
	{prefix: "fixtures_doors_glass", archetype: ArchetypeGlass},
	{prefix: "location_office_door", archetype: ArchetypeOffice},
	{prefix: "fixtures_doors_wood", archetype: ArchetypeWood},
	{prefix: "location_barn_door", archetype: ArchetypeBarn},
	{prefix: "fixtures_doors", archetype: ArchetypeGeneric},
}

var baseChances = map[Archetype]float64{
	ArchetypeMetalReinforced: 0.08,
	ArchetypeMetal:           0.15,
	ArchetypeGarage:          0.07,
	ArchetypeGlass:           0.40,
	ArchetypeOffice:          0.18,
	ArchetypeWood:            0.50,
	ArchetypeBarn:            0.32,
	ArchetypeGeneric:         0.30,
}

// DefaultKickXP is awarded for archetypes without an entry in the XP table.
const DefaultKickXP = 5

var xpRewards = map[Archetype]int{
	ArchetypeMetalReinforced: 25,
	ArchetypeMetal:           25,
	ArchetypeGarage:          15,
	ArchetypeWood:            8,
	ArchetypeGlass:           5,
	ArchetypeOffice:          12,
	ArchetypeBarn:            10,
}

// ClassifySprite maps a sprite name to its archetype. Names that match no
// rule are ArchetypeUnknown.
func ClassifySprite(sprite string) Archetype {
	for _, rule := range archetypeRules {
		if !strings.HasPrefix(sprite, rule.prefix) {
			continue
		}
		if rule.contains != "" && !strings.Contains(sprite, rule.contains) {
			continue
		}
		return rule.archetype
	}
	return ArchetypeUnknown
}

// ClassifyDoor classifies a door by its sprite. A nil door is unknown.
func ClassifyDoor(door Door) Archetype {
	if door == nil {
		return ArchetypeUnknown
	}
	return ClassifySprite(door.SpriteName())
}

// BaseChance returns the unmodified kick chance for an archetype.
func BaseChance(a Archetype) float64 {
	return baseChances[a]
}

// XPReward returns the Strength XP granted for kicking open an archetype.
func XPReward(a Archetype) int {
	if xp, ok := xpRewards[a]; ok {
		return xp
	}
	return DefaultKickXP
}
