package model

import "time"

// SessionConfig contains the workout parameters for the IntervalTimer.
// It may be replaced at any time; the engine re-reads it on the next
// phase transition, never retroactively on the running phase.
type SessionConfig struct {
	// Rounds is the number of work intervals in a session.
	Rounds int

	// WorkDuration and RestDuration are the per-phase lengths.
	// The engine does not validate them; a non-positive duration is
	// accepted and simply yields zero progress.
	WorkDuration time.Duration
	RestDuration time.Duration
}
