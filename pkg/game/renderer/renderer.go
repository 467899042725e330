// Package renderer holds what the terminal and window backends share: cell
// glyphs, the message markup and the status line.
package renderer

import (
	"fmt"
	"regexp"

	"kickdoor/pkg/engine/world"
	"kickdoor/pkg/game/entities"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
	gameworld "kickdoor/pkg/game/world"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleDoor
	StyleDoorOpen
	StyleDenied
	StyleFixture
	StylePlayer
	StyleAction
	StyleXP
	StyleSubtle
)

// Icons
const (
	PlayerIcon      = "@"
	IconWall        = "▒"
	IconFloor       = "·"
	IconVisited     = "○"
	IconVoid        = " "
	IconDoorClosed  = "□"
	IconDoorLocked  = "▣"
	IconDoorOpen    = "▯"
	IconDoorBlocked = "▦" // barricaded
	IconDoorBroken  = "░"
	IconFixture     = "■"
	IconWindow      = "╬"
)

// Glyph returns the icon and style for a cell
func Glyph(g *state.Game, c *world.Cell) (string, TextStyle) {
	if c == nil {
		return IconVoid, StyleNormal
	}

	if g.Player != nil {
		pos := g.Player.Position()
		if pos.X == c.X && pos.Y == c.Y && pos.Z == c.Z {
			return PlayerIcon, StylePlayer
		}
	}

	if d := gameworld.GetDoor(c); d != nil {
		switch {
		case d.Destroyed:
			return IconDoorBroken, StyleSubtle
		case d.Barricaded:
			return IconDoorBlocked, StyleDenied
		case d.Open:
			return IconDoorOpen, StyleDoorOpen
		case d.Locked:
			return IconDoorLocked, StyleDenied
		default:
			return IconDoorClosed, StyleDoor
		}
	}

	if c.FindObject(entities.KindWindow) != nil {
		return IconWindow, StyleFixture
	}
	if gameworld.HasFixture(c) {
		return IconFixture, StyleFixture
	}

	if !c.Floor {
		return IconWall, StyleWall
	}
	if c.Visited {
		return IconVisited, StyleFloor
	}
	return IconFloor, StyleFloor
}

// Status returns the player's strength level and XP
func Status(g *state.Game) string {
	if g.Player == nil {
		return ""
	}
	level, _ := g.Player.SkillLevel(kick.SkillStrength).Get()
	return fmt.Sprintf("%s  %s",
		i18n.T("LEVEL", level),
		i18n.T("STRENGTH_XP", g.Player.XP(kick.SkillStrength)))
}

var markupPattern = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// StyleFunc renders a markup operand in a style
type StyleFunc func(text string, style TextStyle) string

// FormatString expands markup in msg. Supported functions:
//
//	GT{KEY}       translated message
//	ACTION{text}  a key or command
//	DOOR{text}    a door
//	XP{text}      an experience amount
//	DENIED{text}  something refused
//
// Unknown functions are left as plain operands.
func FormatString(msg string, style StyleFunc) string {
	if style == nil {
		style = func(text string, _ TextStyle) string { return text }
	}
	return markupPattern.ReplaceAllStringFunc(msg, func(match string) string {
		parts := markupPattern.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]

		switch function {
		case "GT":
			return i18n.T(operand)
		case "ACTION":
			return style(operand, StyleAction)
		case "DOOR":
			return style(operand, StyleDoor)
		case "XP":
			return style(operand, StyleXP)
		case "DENIED":
			return style(operand, StyleDenied)
		default:
			return operand
		}
	})
}

// Plain expands markup without styling
func Plain(msg string) string {
	return FormatString(msg, nil)
}
