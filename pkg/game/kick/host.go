// Package kick implements the door-kicking rules: finding a door next to an
// agent, deciding whether it may be kicked, rolling the outcome and awarding
// experience.
//
// The package never touches concrete world types. Everything it reads or
// mutates is reached through the small capability interfaces declared here, so
// any host that can answer these queries can run the mechanic.
package kick

// KindDoor is the object kind reported by doors.
const KindDoor = "door"

// Position is a grid coordinate. Z is the vertical level.
type Position struct {
	X, Y, Z int
}

// Object is anything stored in a world cell.
type Object interface {
	ObjectKind() string
}

// Door is a world object with a visual sprite. Everything else a door can do
// is exposed through the optional capabilities below.
type Door interface {
	Object
	SpriteName() string
}

// Lockable doors report and accept a lock state.
type Lockable interface {
	IsLocked() bool
	SetLocked(locked bool)
}

// Destructible doors report whether they have been destroyed.
type Destructible interface {
	IsDestroyed() bool
}

// Barricadable doors report whether they are barricaded.
type Barricadable interface {
	IsBarricaded() bool
}

// HealthReporter exposes current and maximum health. Either value may be absent.
type HealthReporter interface {
	Health() Optional[float64]
	MaxHealth() Optional[float64]
}

// Toggler doors can be opened or closed by an actor.
type Toggler interface {
	Toggle(actor Agent)
}

// Identified objects carry a stable identifier used in logs.
type Identified interface {
	ObjectID() string
}

// Trait is a named character trait.
type Trait string

// Traits that influence kicking.
const (
	TraitAthletic Trait = "Athletic"
	TraitStout    Trait = "Stout"
	TraitStrong   Trait = "Strong"
	TraitBrawler  Trait = "Brawler"
	TraitBrave    Trait = "Brave"
	TraitFeeble   Trait = "Feeble"
	TraitWeak     Trait = "Weak"
)

// Skill identifies a character skill.
type Skill string

// Skills read or trained by kicking.
const (
	SkillStrength Skill = "Strength"
	SkillFitness  Skill = "Fitness"
)

// Agent is the character attempting the kick.
type Agent interface {
	Position() Position
}

// TraitHolder agents can be asked about trait membership.
type TraitHolder interface {
	HasTrait(t Trait) bool
}

// SkillHolder agents report a level per skill. Unknown skills are absent.
type SkillHolder interface {
	SkillLevel(s Skill) Optional[int]
}

// XPReceiver agents accumulate experience. AddXP returns false when the agent
// has no accumulator for the given skill.
type XPReceiver interface {
	AddXP(s Skill, amount int) bool
}

// World answers grid queries. Objects returns the contents of a cell in their
// stored order, or nil for an empty or missing cell.
type World interface {
	Objects(x, y, z int) []Object
}

// TriggerSource reports whether the kick gesture is active this tick.
type TriggerSource interface {
	Active() bool
}

// TriggerFunc adapts a function to a TriggerSource.
type TriggerFunc func() bool

// Active calls f.
func (f TriggerFunc) Active() bool { return f() }

// NeverTrigger never fires. It is the trigger used until a host supplies one.
var NeverTrigger TriggerSource = TriggerFunc(func() bool { return false })

// Notifier is a best-effort channel for user-facing notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(n Notice)

// Notify calls f.
func (f NotifierFunc) Notify(n Notice) { f(n) }

// Roller draws uniform values in [0,1).
type Roller interface {
	Float64() float64
}

// RollerFunc adapts a function to a Roller.
type RollerFunc func() float64

// Float64 calls f.
func (f RollerFunc) Float64() float64 { return f() }
