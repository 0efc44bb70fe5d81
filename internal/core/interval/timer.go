// Package interval implements the workout countdown engine: a
// finite-state machine alternating work and rest phases over a
// configured number of rounds, ticking once per second while running.
package interval

import (
	"sync"
	"time"

	"roundclock/internal/core/model"
)

// Options contains runtime options for the Timer.
type Options struct {
	TickInterval time.Duration
}

// Timer is the interval countdown state machine. All control operations
// are total: calls that violate a precondition are silent no-ops.
type Timer struct {
	mu        sync.Mutex
	config    model.SessionConfig
	options   Options
	phase     Phase
	round     int
	remaining time.Duration
	running   bool
	closed    bool
	stopCh    chan struct{}
	events    []chan Event
}

// New creates a Timer with the provided session configuration.
func New(config model.SessionConfig, options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Timer{
		config:  config,
		options: options,
		phase:   PhaseIdle,
		round:   1,
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// UpdateConfig replaces the session configuration. The running phase is
// not touched; the new values are read at the next phase transition.
func (timer *Timer) UpdateConfig(config model.SessionConfig) {
	timer.mu.Lock()
	timer.config = config
	timer.mu.Unlock()
}

// Config returns the current session configuration.
func (timer *Timer) Config() model.SessionConfig {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// Start enters the first work phase and launches the tick driver.
// A no-op while already running. The round counter is left untouched;
// callers wanting a fresh session call Reset first.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running || timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.phase = PhaseWorking
	timer.remaining = timer.config.WorkDuration
	timer.startDriverLocked()
	timer.emitStateLocked()
	timer.mu.Unlock()
}

// Pause stops the tick driver without touching phase, remaining time or
// round. Always safe; a no-op when already paused.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.stopDriverLocked()
	timer.emitStateLocked()
	timer.mu.Unlock()
}

// Resume restarts the tick driver after a Pause. A no-op unless the
// timer is paused with time still remaining in the current phase.
func (timer *Timer) Resume() {
	timer.mu.Lock()
	if timer.running || timer.closed || timer.remaining <= 0 {
		timer.mu.Unlock()
		return
	}
	timer.startDriverLocked()
	timer.emitStateLocked()
	timer.mu.Unlock()
}

// Reset stops the driver and returns to the idle state: round 1, no
// time remaining. Idempotent and safe from any prior state.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.resetLocked()
	timer.emitStateLocked()
	timer.mu.Unlock()
}

// Close stops the driver and closes all observer channels. The timer
// is unusable afterwards; intended for application shutdown.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.stopDriverLocked()
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a consistent view of the published state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return Snapshot{
		Phase:         timer.phase,
		Round:         timer.round,
		Remaining:     timer.remaining,
		Running:       timer.running,
		PhaseDuration: timer.phaseDurationLocked(),
		Progress:      timer.progressLocked(),
	}
}

// Phase returns the current phase.
func (timer *Timer) Phase() Phase {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.phase
}

// Round returns the current round, in [1, Rounds].
func (timer *Timer) Round() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.round
}

// Remaining returns the time left in the current phase.
func (timer *Timer) Remaining() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.remaining
}

// Running reports whether the tick driver is active.
func (timer *Timer) Running() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.running
}

// PhaseDuration returns the full length of the current phase, zero when idle.
func (timer *Timer) PhaseDuration() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.phaseDurationLocked()
}

// Progress returns the elapsed fraction of the current phase. Zero when
// the phase duration is zero.
func (timer *Timer) Progress() float64 {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.progressLocked()
}

// startDriverLocked creates a fresh stop channel and launches the tick
// goroutine. Each run owns its channel so pause/resume cycles never
// reuse a closed one.
func (timer *Timer) startDriverLocked() {
	stopCh := make(chan struct{})
	timer.stopCh = stopCh
	timer.running = true
	go timer.run(stopCh)
}

// stopDriverLocked cancels the driver. No tick fires after this returns:
// an in-flight tick blocked on the mutex sees running == false.
func (timer *Timer) stopDriverLocked() {
	if timer.stopCh != nil {
		close(timer.stopCh)
		timer.stopCh = nil
	}
	timer.running = false
}

func (timer *Timer) run(stopCh chan struct{}) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			timer.tick(tickTime)
		}
	}
}

// tick advances the machine by one second. Invoked only by the driver.
func (timer *Timer) tick(tickTime time.Time) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.running {
		return
	}

	switch {
	case timer.remaining > 0:
		// With fractional durations this may land below zero; the
		// phase then advances on the following tick.
		timer.remaining -= time.Second
		timer.emitLocked(Event{
			Type:      EventProgress,
			Phase:     timer.phase,
			Round:     timer.round,
			Remaining: timer.remaining,
			Progress:  timer.progressLocked(),
			Running:   timer.running,
			At:        tickTime,
		})

	case timer.phase == PhaseWorking:
		timer.phase = PhaseResting
		timer.remaining = timer.config.RestDuration
		timer.emitStateLocked()

	case timer.phase == PhaseResting:
		timer.round++
		if timer.round > timer.config.Rounds {
			// Session complete: report it, then auto-reset. The
			// transient round value never escapes the lock.
			timer.emitLocked(Event{
				Type:    EventSessionComplete,
				Phase:   timer.phase,
				Round:   timer.config.Rounds,
				Running: timer.running,
				At:      tickTime,
			})
			timer.resetLocked()
			timer.emitStateLocked()
			return
		}
		timer.phase = PhaseWorking
		timer.remaining = timer.config.WorkDuration
		timer.emitStateLocked()
	}
	// Idle: a stray tick has no effect.
}

func (timer *Timer) resetLocked() {
	timer.stopDriverLocked()
	timer.phase = PhaseIdle
	timer.round = 1
	timer.remaining = 0
}

func (timer *Timer) phaseDurationLocked() time.Duration {
	switch timer.phase {
	case PhaseWorking:
		return timer.config.WorkDuration
	case PhaseResting:
		return timer.config.RestDuration
	}
	return 0
}

func (timer *Timer) progressLocked() float64 {
	total := timer.phaseDurationLocked()
	if total <= 0 {
		return 0
	}
	return 1 - float64(timer.remaining)/float64(total)
}

func (timer *Timer) emitStateLocked() {
	timer.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     timer.phase,
		Round:     timer.round,
		Remaining: timer.remaining,
		Progress:  timer.progressLocked(),
		Running:   timer.running,
		At:        time.Now(),
	})
}

func (timer *Timer) emitLocked(event Event) {
	events := append([]chan Event(nil), timer.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
