package kick

import (
	"errors"
	"log/slog"
	"math/rand/v2"
)

// Stage is a step of a single kick attempt.
type Stage int

const (
	StageIdle Stage = iota
	StageLocating
	StageEvaluating
	StageRollingOutcome
	StageSuccess
	StageFailure
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageLocating:
		return "locating"
	case StageEvaluating:
		return "evaluating"
	case StageRollingOutcome:
		return "rolling"
	case StageSuccess:
		return "success"
	case StageFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Outcome is how an attempt ended.
type Outcome int

const (
	OutcomeIdle        Outcome = iota // trigger not active
	OutcomeNoDoor                     // no door next to the agent
	OutcomeNotKickable                // door disqualified
	OutcomeCannotKick                 // door archetype has no chance
	OutcomeSuccess
	OutcomeFailure
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNoDoor:
		return "no_door"
	case OutcomeNotKickable:
		return "not_kickable"
	case OutcomeCannotKick:
		return "cannot_kick"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Attempt records one pass through the kick stages. Stage is the last stage
// reached. Roll is only meaningful once StageRollingOutcome was reached.
type Attempt struct {
	Door    Door
	Chance  float64
	Roll    float64
	Stage   Stage
	Outcome Outcome
	XP      int
}

// Kicker runs kick attempts against a world. It is driven from the host's
// tick callback and keeps no state between ticks.
type Kicker struct {
	world    World
	trigger  TriggerSource
	notifier Notifier
	roller   Roller
	rules    Rules
	logger   *slog.Logger
}

// Option configures a Kicker.
type Option func(*Kicker)

// WithTrigger sets the gesture source consulted by Tick.
func WithTrigger(t TriggerSource) Option {
	return func(k *Kicker) { k.trigger = t }
}

// WithNotifier sets where notices are sent.
func WithNotifier(n Notifier) Option {
	return func(k *Kicker) { k.notifier = n }
}

// WithRoller sets the random source for outcome rolls.
func WithRoller(r Roller) Option {
	return func(k *Kicker) { k.roller = r }
}

// WithRules adds disqualifiers on top of the defaults.
func WithRules(r Rules) Option {
	return func(k *Kicker) { k.rules = r }
}

// WithLogger sets the logger for attempt diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kicker) { k.logger = l }
}

// NewKicker returns a Kicker for w. Unless overridden it never triggers,
// discards notices and rolls with math/rand/v2.
func NewKicker(w World, opts ...Option) *Kicker {
	k := &Kicker{
		world:    w,
		trigger:  NeverTrigger,
		notifier: NotifierFunc(func(Notice) {}),
		roller:   RollerFunc(rand.Float64),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Tick runs one attempt if the trigger is active this tick.
func (k *Kicker) Tick(agent Agent) Attempt {
	if !k.trigger.Active() {
		return Attempt{Stage: StageIdle, Outcome: OutcomeIdle}
	}
	return k.Kick(agent)
}

// Kick runs one attempt regardless of the trigger.
func (k *Kicker) Kick(agent Agent) Attempt {
	att := Attempt{Stage: StageLocating}
	door := FindNearbyDoor(agent, k.world)
	if door == nil {
		att.Outcome = OutcomeNoDoor
		return att
	}
	att.Door = door

	att.Stage = StageEvaluating
	if !k.rules.Kickable(door) {
		att.Outcome = OutcomeNotKickable
		k.log(att)
		return att
	}
	att.Chance = SuccessChance(door, agent)
	if att.Chance <= 0 {
		att.Outcome = OutcomeCannotKick
		k.notifier.Notify(Notice{Kind: NoticeCannotKick})
		k.log(att)
		return att
	}

	att.Stage = StageRollingOutcome
	att.Roll = k.roller.Float64()
	if att.Roll >= att.Chance {
		att.Stage = StageFailure
		att.Outcome = OutcomeFailure
		k.notifier.Notify(Notice{Kind: NoticeKickFailure})
		k.log(att)
		return att
	}

	att.Stage = StageSuccess
	att.Outcome = OutcomeSuccess
	k.breakOpen(door, agent)
	k.notifier.Notify(Notice{Kind: NoticeKickSuccess})

	xp, err := AddKickDoorXP(door, agent)
	switch {
	case errors.Is(err, ErrUnknownSkill):
		k.logger.Info("no kick xp awarded", "error", err)
		k.notifier.Notify(Notice{Kind: NoticeXPUnavailable})
	case err != nil:
		k.logger.Info("no kick xp awarded", "error", err)
	default:
		att.XP = xp
		k.notifier.Notify(Notice{Kind: NoticeXPGained, XP: xp})
	}
	k.log(att)
	return att
}

func (k *Kicker) breakOpen(door Door, agent Agent) {
	if l, ok := door.(Lockable); ok && l.IsLocked() {
		l.SetLocked(false)
	}
	if t, ok := door.(Toggler); ok && agent != nil {
		t.Toggle(agent)
	}
}

func (k *Kicker) log(att Attempt) {
	id := ""
	if ident, ok := att.Door.(Identified); ok {
		id = ident.ObjectID()
	}
	k.logger.Debug("kick attempt",
		"door_id", id,
		"sprite", att.Door.SpriteName(),
		"archetype", ClassifyDoor(att.Door).String(),
		"chance", att.Chance,
		"roll", att.Roll,
		"stage", att.Stage.String(),
		"outcome", att.Outcome.String(),
		"xp", att.XP,
	)
}
