package requestid

import "sync/atomic"

// State is the position of a request in the binding lifecycle.
type State int

const (
	StateUnbound State = iota
	StateBound
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateFinalized:
		return "finalized"
	default:
		return "unbound"
	}
}

// Scope holds the identifier of a single in-flight request.
// It is created by WithContext and released by Finalize; after that the
// identifier is no longer retrievable through it.
type Scope struct {
	id        ID
	owner     *Binder
	finalized atomic.Bool
}

func newScope(id ID, owner *Binder) *Scope {
	return &Scope{id: id, owner: owner}
}

// ID returns the bound identifier while the scope is open.
func (s *Scope) ID() (ID, bool) {
	if s == nil || s.finalized.Load() {
		return ID{}, false
	}
	return s.id, true
}

// State reports the lifecycle state. A nil scope is unbound.
func (s *Scope) State() State {
	switch {
	case s == nil:
		return StateUnbound
	case s.finalized.Load():
		return StateFinalized
	default:
		return StateBound
	}
}

// Finalize closes the scope. It reports true only for the call that performed the transition.
func (s *Scope) Finalize() bool {
	if s == nil {
		return false
	}
	return s.finalized.CompareAndSwap(false, true)
}
