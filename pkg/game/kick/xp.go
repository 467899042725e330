package kick

import "errors"

// Non-fatal conditions reported by AddKickDoorXP.
var (
	ErrNoXPCapability = errors.New("agent cannot receive experience")
	ErrUnknownSkill   = errors.New("agent has no accumulator for skill")
)

// KickXPSkill is the skill trained by kicking doors.
const KickXPSkill = SkillStrength

// AddKickDoorXP grants the archetype's XP reward to the agent and returns the
// amount granted. When the agent cannot take the XP nothing is mutated and
// one of the sentinel errors above is returned.
func AddKickDoorXP(door Door, agent Agent) (int, error) {
	receiver, ok := agent.(XPReceiver)
	if !ok {
		return 0, ErrNoXPCapability
	}
	xp := XPReward(ClassifyDoor(door))
	if !receiver.AddXP(KickXPSkill, xp) {
		return 0, ErrUnknownSkill
	}
	return xp, nil
}
