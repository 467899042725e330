package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceGamepad
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionKick // Kick an adjacent door

	// Meta / UI
	ActionHelp
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "k", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both hosts deliver already debounced keys (inpututil just-pressed, raw
// terminal reads), so this is a distinct type only to keep the layers explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// DefaultKickCode is the key bound to ActionKick unless configured otherwise.
const DefaultKickCode = "k"

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = defaultBindings()

func defaultBindings() map[string]Action {
	return map[string]Action{
		"arrow_up":    ActionMoveNorth,
		"w":           ActionMoveNorth,
		"arrow_down":  ActionMoveSouth,
		"s":           ActionMoveSouth,
		"arrow_left":  ActionMoveWest,
		"a":           ActionMoveWest,
		"arrow_right": ActionMoveEast,
		"d":           ActionMoveEast,

		DefaultKickCode: ActionKick,

		"?":      ActionHelp,
		"h":      ActionHelp,
		"q":      ActionQuit,
		"ctrl_c": ActionQuit,
		"escape": ActionQuit,

		"pad_up":    ActionMoveNorth,
		"pad_down":  ActionMoveSouth,
		"pad_left":  ActionMoveWest,
		"pad_right": ActionMoveEast,
		"pad_a":     ActionKick,
		"pad_y":     ActionHelp,
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionKick:
		return "Kick Door"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// isReserved reports codes that can never be rebound.
func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "ctrl_c":
		return true
	}
	return strings.HasPrefix(code, "pad_")
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes are left alone. Returns false if code is reserved.
func SetSingleBinding(action Action, code string) bool {
	if code == "" || isReserved(code) {
		return false
	}
	for c, a := range bindings {
		if a == action && !isReserved(c) {
			delete(bindings, c)
		}
	}
	bindings[code] = action
	return true
}

// CodeForKeyName converts a window-system key name ("A", "ArrowUp",
// "Digit1", "Slash") into a binding code. Unknown names map to "".
func CodeForKeyName(name string) string {
	switch name {
	case "ArrowUp":
		return "arrow_up"
	case "ArrowDown":
		return "arrow_down"
	case "ArrowLeft":
		return "arrow_left"
	case "ArrowRight":
		return "arrow_right"
	case "Escape":
		return "escape"
	case "Enter":
		return "enter"
	case "Slash":
		return "?"
	}
	if digit, ok := strings.CutPrefix(name, "Digit"); ok && len(digit) == 1 {
		return digit
	}
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return ""
}
