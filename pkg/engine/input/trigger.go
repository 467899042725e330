package input

// IntentTrigger turns a queued kick intent into a one-tick trigger. It
// satisfies kick.TriggerSource.
type IntentTrigger struct {
	pending bool
}

// Queue records the intent. Only ActionKick arms the trigger.
func (t *IntentTrigger) Queue(intent Intent) {
	if intent.Action == ActionKick {
		t.pending = true
	}
}

// Active reports whether a kick was queued since the last call, and disarms it.
func (t *IntentTrigger) Active() bool {
	active := t.pending
	t.pending = false
	return active
}
