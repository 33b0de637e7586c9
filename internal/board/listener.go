package board

// Listener receives board-changed notifications. Listeners run synchronously
// in registration order, inside the mutating call. A listener that panics
// aborts the remaining notifications; the mutation stays applied.
type Listener func(b *Board)

// Change identifies the mutation behind the most recent notification.
type Change uint8

const (
	ChangeNone Change = iota
	ChangeReset
	ChangeToggle
	ChangeStep
	ChangeUndo
)

func (c Change) String() string {
	switch c {
	case ChangeReset:
		return "reset"
	case ChangeToggle:
		return "toggle"
	case ChangeStep:
		return "step"
	case ChangeUndo:
		return "undo"
	default:
		return "none"
	}
}
