package kick

// Disqualifier reports whether a door must not be kicked.
type Disqualifier func(door Door) bool

// Destroyed disqualifies doors that report themselves destroyed.
func Destroyed(door Door) bool {
	d, ok := door.(Destructible)
	return ok && d.IsDestroyed()
}

// Barricaded disqualifies doors that report themselves barricaded.
func Barricaded(door Door) bool {
	b, ok := door.(Barricadable)
	return ok && b.IsBarricaded()
}

// DefaultDisqualifiers are always checked, in order.
var DefaultDisqualifiers = []Disqualifier{
	Destroyed,
	Barricaded,
}

// IsDoorKickable reports whether door passes the default disqualifiers.
func IsDoorKickable(door Door) bool {
	return passes(door, DefaultDisqualifiers)
}

// Rules extends the default disqualifiers with host supplied ones.
type Rules struct {
	Disqualifiers []Disqualifier
}

// Kickable reports whether door passes both the default and the extra
// disqualifiers.
func (r Rules) Kickable(door Door) bool {
	return IsDoorKickable(door) && passes(door, r.Disqualifiers)
}

func passes(door Door, disqualifiers []Disqualifier) bool {
	if door == nil {
		return false
	}
	for _, disqualified := range disqualifiers {
		if disqualified(door) {
			return false
		}
	}
	return true
}
