package ledger

import "fmt"

// State is the lifecycle state of a ledger entry. It replaces the two
// independent undecided/done booleans of earlier schema revisions; the pair
// (undecided=true, done=true) was representable there but never meaningful.
type State string

const (
	// StateUndecided marks an entry whose amount or occurrence is not yet
	// settled.
	StateUndecided State = "undecided"
	// StateDecided marks a settled entry whose money has not moved yet.
	StateDecided State = "decided"
	// StateDone marks an entry whose money has moved.
	StateDone State = "done"
)

// ParseState validates a wire value as a State.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateUndecided, StateDecided, StateDone:
		return State(s), nil
	}

	return "", fmt.Errorf("unknown entry state %q", s)
}

// StateFromFlags maps the historical boolean pair onto the enum, exactly as
// the schema migration did: undecided wins, then done distinguishes the
// remaining two.
func StateFromFlags(undecided, done bool) State {
	switch {
	case undecided:
		return StateUndecided
	case !done:
		return StateDecided
	default:
		return StateDone
	}
}

// rank orders states along the lifecycle.
func (s State) rank() int {
	switch s {
	case StateUndecided:
		return 0
	case StateDecided:
		return 1
	case StateDone:
		return 2
	}

	return -1
}

// CanAdvanceTo reports whether moving from s to target respects the
// forward-only lifecycle Undecided -> Decided -> Done. Staying put is
// allowed; moving backward is not.
func (s State) CanAdvanceTo(target State) bool {
	if s.rank() < 0 || target.rank() < 0 {
		return false
	}

	return target.rank() >= s.rank()
}

// IsDone reports whether the entry's money has moved.
func (s State) IsDone() bool {
	return s == StateDone
}
