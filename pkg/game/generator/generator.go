// Package generator lays out random buildings as scenarios.
package generator

import (
	"math/rand/v2"

	"kickdoor/pkg/game/scenario"
)

// Name selects the generator in place of a scenario file
const Name = "random"

// Default building size, including the perimeter wall
const (
	DefaultWidth  = 40
	DefaultHeight = 20
)

// Generator builds a scenario from a random source
type Generator interface {
	Generate(name string) *scenario.Scenario
	Name() string
}

// doorSprites covers every kickable archetype. Weighted towards the
// doors a house is mostly made of.
var doorSprites = []string{
	"fixtures_doors_wood_01_0",
	"fixtures_doors_wood_02_0",
	"fixtures_doors_wood_03_0",
	"fixtures_doors_01_0",
	"fixtures_doors_02_0",
	"fixtures_doors_glass_01_0",
	"location_office_door_01_0",
	"location_barn_door_01_0",
	"fixtures_doors_garage_01_0",
	"fixtures_doors_metal_01_0",
	"fixtures_doors_metal_reinforced_01_0",
}

// New returns the default generator drawing from rng
func New(rng *rand.Rand) Generator {
	return NewBSP(rng, DefaultWidth, DefaultHeight)
}
