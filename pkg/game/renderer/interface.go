package renderer

import (
	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
)

// Host is the game loop a renderer drives. Each call to ProcessIntent or
// Tick advances the game by exactly one tick.
type Host interface {
	Game() *state.Game
	ProcessIntent(intent input.Intent) kick.Attempt
	Tick() kick.Attempt
}

// Renderer defines the interface for game rendering backends.
// Run blocks until the player quits or input is exhausted.
type Renderer interface {
	Run(h Host) error
}
