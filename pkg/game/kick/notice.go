package kick

// NoticeKind identifies a user-facing message. Hosts translate Key.
type NoticeKind int

const (
	NoticeCannotKick NoticeKind = iota + 1
	NoticeKickSuccess
	NoticeKickFailure
	NoticeXPGained
	NoticeXPUnavailable
)

// Key returns the message catalogue key for the notice.
func (k NoticeKind) Key() string {
	switch k {
	case NoticeCannotKick:
		return "KICK_CANNOT"
	case NoticeKickSuccess:
		return "KICK_SUCCESS"
	case NoticeKickFailure:
		return "KICK_FAILURE"
	case NoticeXPGained:
		return "KICK_XP_GAINED"
	case NoticeXPUnavailable:
		return "KICK_XP_UNAVAILABLE"
	default:
		return "UNKNOWN_NOTICE"
	}
}

// Notice is a fire-and-forget message for the player.
type Notice struct {
	Kind NoticeKind
	XP   int // set for NoticeXPGained
}

// Args returns the format arguments the notice's message expects.
func (n Notice) Args() []any {
	if n.Kind == NoticeXPGained {
		return []any{n.XP}
	}
	return nil
}
