// Package gameplay drives the kick sandbox: movement, help and kicking,
// one intent per tick.
package gameplay

import (
	"fmt"
	"log/slog"
	"strings"

	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/state"
	gameworld "kickdoor/pkg/game/world"
)

// Session owns the kicker for one game and feeds it player intents.
type Session struct {
	game    *state.Game
	kicker  *kick.Kicker
	trigger *input.IntentTrigger
	logger  *slog.Logger
}

// NewSession wires a kicker to g. Kick intents arm the trigger and notices
// land in the game's message log. opts are applied last and may override both.
func NewSession(g *state.Game, logger *slog.Logger, opts ...kick.Option) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	trigger := &input.IntentTrigger{}
	base := []kick.Option{
		kick.WithTrigger(trigger),
		kick.WithNotifier(g),
		kick.WithLogger(logger),
	}
	return &Session{
		game:    g,
		kicker:  kick.NewKicker(gameworld.KickView{Grid: g.Grid}, append(base, opts...)...),
		trigger: trigger,
		logger:  logger,
	}
}

// Game returns the session's game state
func (s *Session) Game() *state.Game {
	return s.game
}

// Welcome logs the opening messages
func (s *Session) Welcome() {
	logMessage(s.game, "%s", i18n.T("WELCOME", s.game.Name))
	s.showHelp()
}

// ProcessIntent applies one intent and advances the game by a tick.
func (s *Session) ProcessIntent(intent input.Intent) kick.Attempt {
	switch intent.Action {
	case input.ActionNone:
	case input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast:
		MovePlayer(s.game, directionFor(intent.Action))
	case input.ActionHelp:
		s.showHelp()
	case input.ActionQuit:
		s.game.Quit = true
	case input.ActionKick:
		s.trigger.Queue(intent)
	default:
		logMessage(s.game, "%s", i18n.T("UNKNOWN_COMMAND"))
	}
	return s.Tick()
}

// Tick advances the game without player input. A queued kick fires here.
func (s *Session) Tick() kick.Attempt {
	s.game.Ticks++
	if s.game.Player == nil {
		return kick.Attempt{Stage: kick.StageIdle, Outcome: kick.OutcomeIdle}
	}
	att := s.kicker.Tick(s.game.Player)
	if att.Outcome == kick.OutcomeNoDoor {
		s.logger.Debug("kick with no door nearby", "tick", s.game.Ticks)
	}
	return att
}

func (s *Session) showHelp() {
	var keys []string
	for _, code := range input.GetBindingsByAction()[input.ActionKick] {
		if !strings.HasPrefix(code, "pad_") {
			keys = append(keys, code)
		}
	}
	kickKey := input.DefaultKickCode
	if len(keys) > 0 {
		kickKey = strings.Join(keys, "/")
	}
	logMessage(s.game, "%s", i18n.T("HELP", kickKey))
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
