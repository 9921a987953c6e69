package entity

// RunState is the Sequencer's position in one discard run.
type RunState int

const (
	RunStateIdle RunState = iota
	RunStateDispatching
	RunStateAwaitingConfirmation
	RunStateConfirmed
	RunStateDone
	RunStateFailed
	RunStateAborted
)

func (s RunState) String() string {
	switch s {
	case RunStateIdle:
		return "idle"
	case RunStateDispatching:
		return "dispatching"
	case RunStateAwaitingConfirmation:
		return "awaiting_confirmation"
	case RunStateConfirmed:
		return "confirmed"
	case RunStateDone:
		return "done"
	case RunStateFailed:
		return "failed"
	case RunStateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has finished.
func (s RunState) Terminal() bool {
	return s == RunStateDone || s == RunStateFailed || s == RunStateAborted
}

// RunResult is the single user-visible summary of a finished run.
type RunResult struct {
	RunID    string   `json:"run_id"`
	State    RunState `json:"state"`
	Disposed int      `json:"disposed"`
	Reason   string   `json:"reason,omitempty"`
}
