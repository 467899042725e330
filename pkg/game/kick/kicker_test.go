package kick

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kickerFixture(t *testing.T, roll float64, objs ...Object) (*Kicker, *fakeAgent, *notices) {
	t.Helper()
	w := newWorld()
	w.put(3, 3, 0, objs...)
	var got notices
	k := NewKicker(w,
		WithTrigger(alwaysTrigger()),
		WithNotifier(&got),
		WithRoller(fixedRoll(roll)),
	)
	return k, newAgent(3, 4, 0), &got
}

func TestKicker_DefaultTriggerNeverFires(t *testing.T) {
	w := newWorld()
	door := &fakeDoor{sprite: "fixtures_doors_wood_01", locked: true}
	w.put(0, 0, 0, door)
	rolled := false
	k := NewKicker(w, WithRoller(RollerFunc(func() float64 {
		rolled = true
		return 0
	})))

	att := k.Tick(newAgent(0, 0, 0))
	assert.Equal(t, OutcomeIdle, att.Outcome)
	assert.Equal(t, StageIdle, att.Stage)
	assert.False(t, rolled)
	assert.True(t, door.locked)
	assert.Empty(t, w.queries)
}

func TestKicker_NoDoor(t *testing.T) {
	k, agent, got := kickerFixture(t, 0, fixture{kind: "window"})

	att := k.Tick(agent)
	assert.Equal(t, OutcomeNoDoor, att.Outcome)
	assert.Equal(t, StageLocating, att.Stage)
	assert.Empty(t, *got)
}

func TestKicker_NotKickableIsSilent(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_wood_01", barricaded: true}
	k, agent, got := kickerFixture(t, 0, door)

	att := k.Tick(agent)
	assert.Equal(t, OutcomeNotKickable, att.Outcome)
	assert.Equal(t, StageEvaluating, att.Stage)
	assert.Empty(t, *got)
}

func TestKicker_UnknownArchetypeCannotBeKicked(t *testing.T) {
	rolled := false
	w := newWorld()
	door := &fakeDoor{sprite: "fixtures_window_01"}
	w.put(3, 3, 0, door)
	var got notices
	k := NewKicker(w,
		WithTrigger(alwaysTrigger()),
		WithNotifier(&got),
		WithRoller(RollerFunc(func() float64 {
			rolled = true
			return 0
		})),
	)

	att := k.Tick(newAgent(3, 3, 0))
	assert.Equal(t, OutcomeCannotKick, att.Outcome)
	assert.Zero(t, att.Chance)
	assert.False(t, rolled)
	assert.Equal(t, []NoticeKind{NoticeCannotKick}, got.kinds())
}

func TestKicker_Success(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_wood_01", locked: true}
	k, agent, got := kickerFixture(t, 0.49, door)

	att := k.Tick(agent)
	require.Equal(t, OutcomeSuccess, att.Outcome)
	assert.Equal(t, StageSuccess, att.Stage)
	assert.Equal(t, 0.5, att.Chance)
	assert.Equal(t, 0.49, att.Roll)
	assert.Equal(t, 8, att.XP)

	assert.False(t, door.locked)
	assert.True(t, door.open)
	assert.Same(t, agent, door.toggledBy)
	assert.Equal(t, 8, agent.xp[SkillStrength])
	assert.Equal(t, notices{
		{Kind: NoticeKickSuccess},
		{Kind: NoticeXPGained, XP: 8},
	}, *got)
}

func TestKicker_SuccessOnUnlockedDoorStillToggles(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_glass_01"}
	k, agent, _ := kickerFixture(t, 0, door)

	att := k.Tick(agent)
	require.Equal(t, OutcomeSuccess, att.Outcome)
	assert.False(t, door.locked)
	assert.True(t, door.open)
}

func TestKicker_RollEqualToChanceFails(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_wood_01", locked: true}
	k, agent, got := kickerFixture(t, 0.5, door)

	att := k.Tick(agent)
	assert.Equal(t, OutcomeFailure, att.Outcome)
	assert.Equal(t, StageFailure, att.Stage)
	assert.True(t, door.locked)
	assert.False(t, door.open)
	assert.Zero(t, agent.xp[SkillStrength])
	assert.Equal(t, []NoticeKind{NoticeKickFailure}, got.kinds())
}

func TestKicker_NaNHealthDoorRollsNormally(t *testing.T) {
	door := &fakeDoor{
		sprite:    "fixtures_doors_metal_reinforced_01",
		locked:    true,
		health:    Some(math.NaN()),
		maxHealth: Some(100.0),
	}
	k, agent, got := kickerFixture(t, 0.999, door)

	att := k.Tick(agent)
	assert.Equal(t, OutcomeFailure, att.Outcome)
	assert.InDelta(t, 0.08, att.Chance, 1e-12)
	assert.True(t, door.locked)
	assert.Zero(t, agent.xp[SkillStrength])
	assert.Equal(t, []NoticeKind{NoticeKickFailure}, got.kinds())
}

func TestKicker_SuccessWithoutXPSkill(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_wood_01"}
	k, agent, got := kickerFixture(t, 0, door)
	delete(agent.xp, SkillStrength)

	att := k.Tick(agent)
	assert.Equal(t, OutcomeSuccess, att.Outcome)
	assert.Zero(t, att.XP)
	assert.Equal(t, []NoticeKind{NoticeKickSuccess, NoticeXPUnavailable}, got.kinds())
}

func TestKicker_SuccessWithoutXPCapability(t *testing.T) {
	w := newWorld()
	door := bareDoor{sprite: "fixtures_doors_wood_01"}
	w.put(1, 1, 0, door)
	var got notices
	k := NewKicker(w, WithTrigger(alwaysTrigger()), WithNotifier(&got), WithRoller(fixedRoll(0)))

	att := k.Tick(positionOnly{X: 1, Y: 1})
	assert.Equal(t, OutcomeSuccess, att.Outcome)
	assert.Equal(t, []NoticeKind{NoticeKickSuccess}, got.kinds())
}

func TestKicker_RulesApply(t *testing.T) {
	w := newWorld()
	door := &fakeDoor{sprite: "fixtures_doors_garage_01", locked: true}
	w.put(0, 0, 0, door)
	k := NewKicker(w,
		WithTrigger(alwaysTrigger()),
		WithRoller(fixedRoll(0)),
		WithRules(Rules{Disqualifiers: []Disqualifier{
			func(d Door) bool { return ClassifyDoor(d) == ArchetypeGarage },
		}}),
	)

	assert.Equal(t, OutcomeNotKickable, k.Tick(newAgent(0, 0, 0)).Outcome)
	assert.True(t, door.locked)
}

func TestKicker_EachTickIsIndependent(t *testing.T) {
	door := &fakeDoor{sprite: "fixtures_doors_wood_01", locked: true}
	rolls := []float64{0.9, 0.1}
	w := newWorld()
	w.put(0, 0, 0, door)
	var got notices
	k := NewKicker(w,
		WithTrigger(alwaysTrigger()),
		WithNotifier(&got),
		WithRoller(RollerFunc(func() float64 {
			r := rolls[0]
			rolls = rolls[1:]
			return r
		})),
	)
	agent := newAgent(0, 0, 0)

	assert.Equal(t, OutcomeFailure, k.Tick(agent).Outcome)
	assert.Equal(t, OutcomeSuccess, k.Tick(agent).Outcome)
	assert.Equal(t, []NoticeKind{NoticeKickFailure, NoticeKickSuccess, NoticeXPGained}, got.kinds())
}

func TestNotice_Keys(t *testing.T) {
	assert.Equal(t, "KICK_CANNOT", NoticeCannotKick.Key())
	assert.Equal(t, []any{25}, Notice{Kind: NoticeXPGained, XP: 25}.Args())
	assert.Nil(t, Notice{Kind: NoticeKickFailure}.Args())
}
