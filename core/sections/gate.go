package sections

// GateState is the state of a RefreshGate.
type GateState int

const (
	// Idle accepts a new refresh.
	Idle GateState = iota
	// Pending holds a computed refresh that was not reported applied yet.
	Pending
)

// String returns the state name.
func (s GateState) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

// RefreshGate admits at most one refresh at a time.
// It is a plain state value, not a lock; callers serialize access.
type RefreshGate struct {
	state GateState
}

// TryEnter moves the gate to Pending and reports whether it was Idle.
func (g *RefreshGate) TryEnter() bool {
	if g.state == Pending {
		return false
	}
	g.state = Pending
	return true
}

// Complete moves the gate back to Idle.
func (g *RefreshGate) Complete() {
	g.state = Idle
}

// State returns the current state.
func (g *RefreshGate) State() GateState {
	return g.state
}
