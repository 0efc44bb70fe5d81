package interval

import "time"

// Phase represents the current IntervalTimer phase.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseWorking Phase = "working"
	PhaseResting Phase = "resting"
)

// EventType defines the type of IntervalTimer event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventProgress        EventType = "progress"
	EventSessionComplete EventType = "session_complete"
)

// Event represents an IntervalTimer update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Round     int
	Remaining time.Duration
	Progress  float64
	Running   bool
	At        time.Time
}

// Snapshot is a consistent read of the published engine state,
// for consumers that poll instead of subscribing.
type Snapshot struct {
	Phase         Phase
	Round         int
	Remaining     time.Duration
	Running       bool
	PhaseDuration time.Duration
	Progress      float64
}
