package kick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySprite(t *testing.T) {
	tests := []struct {
		sprite string
		want   Archetype
		base   float64
		xp     int
	}{
		{"fixtures_doors_metal_reinforced_02", ArchetypeMetalReinforced, 0.08, 25},
		{"fixtures_doors_metal_01", ArchetypeMetal, 0.15, 25},
		{"fixtures_doors_garage_01", ArchetypeGarage, 0.07, 15},
		{"fixtures_doors_glass_03", ArchetypeGlass, 0.40, 5},
		{"location_office_door_01", ArchetypeOffice, 0.18, 12},
		{"fixtures_doors_wood_01", ArchetypeWood, 0.50, 8},
		{"location_barn_door_02", ArchetypeBarn, 0.32, 10},
		{"fixtures_doors_fences_01", ArchetypeGeneric, 0.30, DefaultKickXP},
		{"fixtures_window_01", ArchetypeUnknown, 0, DefaultKickXP},
		{"", ArchetypeUnknown, 0, DefaultKickXP},
	}
	for _, tt := range tests {
		t.Run(tt.sprite, func(t *testing.T) {
			got := ClassifySprite(tt.sprite)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.base, BaseChance(got))
			assert.Equal(t, tt.xp, XPReward(got))
		})
	}
}

func TestClassifySprite_ReinforcedOnlyCountsForMetal(t *testing.T) {
	assert.Equal(t, ArchetypeWood, ClassifySprite("fixtures_doors_wood_reinforced"))
}

func TestClassifyDoor_Nil(t *testing.T) {
	assert.Equal(t, ArchetypeUnknown, ClassifyDoor(nil))
	assert.Equal(t, "unknown", ArchetypeUnknown.String())
}
