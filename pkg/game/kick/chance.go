package kick

import "math"

// Per-trait adjustments to the trait modifier. Several may apply at once.
var traitModifiers = []struct {
	trait Trait
	delta float64
}{
	{TraitAthletic, 0.10},
	{TraitStout, 0.07},
	{TraitStrong, 0.12},
	{TraitBrawler, 0.06},
	{TraitBrave, 0.03},
	{TraitFeeble, -0.15},
	{TraitWeak, -0.18},
}

const (
	strengthPerLevel = 0.025
	fitnessPerLevel  = 0.015

	// A fully broken door is this much easier than an intact one.
	maxDamageBonus = 0.5
)

// HealthModifier returns 1 + 0.5*(1 - current/max) when the door reports both
// values as finite numbers and max is positive, and 1 otherwise.
func HealthModifier(door Door) float64 {
	hr, ok := door.(HealthReporter)
	if !ok {
		return 1.0
	}
	return healthModifier(hr.Health(), hr.MaxHealth())
}

func healthModifier(current, maximum Optional[float64]) float64 {
	cur, ok := current.Get()
	if !ok || !finite(cur) {
		return 1.0
	}
	maxHealth, ok := maximum.Get()
	if !ok || !finite(maxHealth) || maxHealth <= 0 {
		return 1.0
	}
	return 1.0 + maxDamageBonus*(1-cur/maxHealth)
}

// TraitModifier sums the trait adjustments that apply to the agent onto 1.0.
func TraitModifier(agent Agent) float64 {
	mod := 1.0
	th, ok := agent.(TraitHolder)
	if !ok {
		return mod
	}
	for _, tm := range traitModifiers {
		if th.HasTrait(tm.trait) {
			mod += tm.delta
		}
	}
	return mod
}

// SkillModifier returns 1 + 0.025*Strength + 0.015*Fitness. Missing levels
// count as zero.
func SkillModifier(agent Agent) float64 {
	mod := 1.0
	sh, ok := agent.(SkillHolder)
	if !ok {
		return mod
	}
	mod += strengthPerLevel * float64(sh.SkillLevel(SkillStrength).OrElse(0))
	mod += fitnessPerLevel * float64(sh.SkillLevel(SkillFitness).OrElse(0))
	return mod
}

// SuccessChance returns the probability in [0,1] that agent kicks door open.
func SuccessChance(door Door, agent Agent) float64 {
	base := BaseChance(ClassifyDoor(door))
	if base == 0 {
		return 0
	}
	return clamp01(base * HealthModifier(door) * TraitModifier(agent) * SkillModifier(agent))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clamp01 maps NaN to 0 so a bad input can never guarantee success.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
