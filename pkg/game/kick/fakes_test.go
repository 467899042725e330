package kick

type fakeDoor struct {
	sprite     string
	locked     bool
	open       bool
	barricaded bool
	destroyed  bool
	health     Optional[float64]
	maxHealth  Optional[float64]
	toggledBy  Agent
}

func (d *fakeDoor) ObjectKind() string           { return KindDoor }
func (d *fakeDoor) SpriteName() string           { return d.sprite }
func (d *fakeDoor) IsLocked() bool               { return d.locked }
func (d *fakeDoor) SetLocked(locked bool)        { d.locked = locked }
func (d *fakeDoor) IsBarricaded() bool           { return d.barricaded }
func (d *fakeDoor) IsDestroyed() bool            { return d.destroyed }
func (d *fakeDoor) Health() Optional[float64]    { return d.health }
func (d *fakeDoor) MaxHealth() Optional[float64] { return d.maxHealth }
func (d *fakeDoor) Toggle(actor Agent) {
	d.open = !d.open
	d.toggledBy = actor
}

// bareDoor has a sprite and nothing else.
type bareDoor struct{ sprite string }

func (d bareDoor) ObjectKind() string { return KindDoor }
func (d bareDoor) SpriteName() string { return d.sprite }

type fixture struct{ kind string }

func (f fixture) ObjectKind() string { return f.kind }

type fakeAgent struct {
	pos    Position
	traits map[Trait]bool
	skills map[Skill]int
	xp     map[Skill]int
}

func newAgent(x, y, z int) *fakeAgent {
	return &fakeAgent{
		pos:    Position{X: x, Y: y, Z: z},
		traits: map[Trait]bool{},
		skills: map[Skill]int{},
		xp:     map[Skill]int{SkillStrength: 0, SkillFitness: 0},
	}
}

func (a *fakeAgent) Position() Position    { return a.pos }
func (a *fakeAgent) HasTrait(t Trait) bool { return a.traits[t] }
func (a *fakeAgent) SkillLevel(s Skill) Optional[int] {
	if lvl, ok := a.skills[s]; ok {
		return Some(lvl)
	}
	return None[int]()
}
func (a *fakeAgent) AddXP(s Skill, amount int) bool {
	if _, ok := a.xp[s]; !ok {
		return false
	}
	a.xp[s] += amount
	return true
}

// positionOnly is an agent without any optional capability.
type positionOnly Position

func (p positionOnly) Position() Position { return Position(p) }

type cellKey struct{ x, y, z int }

type fakeWorld struct {
	cells   map[cellKey][]Object
	queries []cellKey
}

func newWorld() *fakeWorld {
	return &fakeWorld{cells: map[cellKey][]Object{}}
}

func (w *fakeWorld) put(x, y, z int, objs ...Object) {
	k := cellKey{x, y, z}
	w.cells[k] = append(w.cells[k], objs...)
}

func (w *fakeWorld) Objects(x, y, z int) []Object {
	k := cellKey{x, y, z}
	w.queries = append(w.queries, k)
	return w.cells[k]
}

type notices []Notice

func (n *notices) Notify(notice Notice) { *n = append(*n, notice) }

func (n notices) kinds() []NoticeKind {
	var out []NoticeKind
	for _, notice := range n {
		out = append(out, notice.Kind)
	}
	return out
}

func fixedRoll(v float64) Roller {
	return RollerFunc(func() float64 { return v })
}

func alwaysTrigger() TriggerSource {
	return TriggerFunc(func() bool { return true })
}
