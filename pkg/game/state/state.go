package state

import (
	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/kick"
)

// maxMessages is the length of the message log
const maxMessages = 5

// Game holds everything a host needs to run the kick sandbox
type Game struct {
	Name string

	Grid   *world.Grid
	Player *entities.Player

	Messages []string

	Ticks uint64

	Quit bool
}

// NewGame creates a new game instance
func NewGame(name string) *Game {
	return &Game{
		Name:     name,
		Messages: make([]string, 0),
	}
}

// CurrentCell returns the cell the player stands in
func (g *Game) CurrentCell() *world.Cell {
	if g.Player == nil {
		return nil
	}
	pos := g.Player.Position()
	return g.Grid.GetCell(pos.X, pos.Y, pos.Z)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Notify implements kick.Notifier by translating the notice into the message log
func (g *Game) Notify(n kick.Notice) {
	g.AddMessage(i18n.T(n.Kind.Key(), n.Args()...))
}
