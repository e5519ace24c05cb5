// Package timer operates the work session timer and its interactive
// display.
package timer

import (
	"sync"
	"time"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

type state int

const (
	stateIdle state = iota
	stateRunning
	statePaused
)

// FinalizedSession is the result of stopping a session. Elapsed holds
// the accumulated running time in seconds, which excludes any paused
// intervals and may therefore be less than the span between the start
// and end timestamps.
type FinalizedSession struct {
	StartTime time.Time
	EndTime   time.Time
	Elapsed   float64
}

// SessionTimer tracks a single work session across pause and resume
// cycles. Interval accounting uses the monotonic clock reading carried
// by segmentStart so that wall-clock jumps cannot distort the elapsed
// time, while the session start and end stamps record wall-clock time.
//
// A mutex guards all fields because the display polls Elapsed from the
// event loop while key handlers mutate state.
type SessionTimer struct {
	mu           sync.Mutex
	state        state
	sessionStart time.Time
	segmentStart time.Time
	accumulated  float64
}

// New returns an idle session timer.
func New() *SessionTimer {
	return &SessionTimer{}
}

// Start begins a new session. The accumulated time is reset to zero
// and the session start timestamp is recorded once; it is unaffected
// by later pauses and resumes.
func (t *SessionTimer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateIdle {
		return ErrAlreadyRunning
	}

	now := timeNow()
	t.sessionStart = now
	t.segmentStart = now
	t.accumulated = 0
	t.state = stateRunning

	return nil
}

// Pause folds the open running segment into the accumulated total and
// stops the clock.
func (t *SessionTimer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != stateRunning {
		return ErrNotRunning
	}

	t.accumulated += timeNow().Sub(t.segmentStart).Seconds()
	t.state = statePaused

	return nil
}

// Resume opens a new running segment without resetting the
// accumulated total.
func (t *SessionTimer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case stateRunning:
		return ErrAlreadyRunning
	case stateIdle:
		return ErrNotRunning
	}

	t.segmentStart = timeNow()
	t.state = stateRunning

	return nil
}

// Stop finalizes the session and resets the timer to idle. Stopping
// immediately after Start is legal and yields a zero-elapsed session.
func (t *SessionTimer) Stop() (FinalizedSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == stateIdle {
		return FinalizedSession{}, ErrNoActiveSession
	}

	now := timeNow()

	if t.state == stateRunning {
		t.accumulated += now.Sub(t.segmentStart).Seconds()
	}

	fin := FinalizedSession{
		StartTime: t.sessionStart,
		EndTime:   now,
		Elapsed:   t.accumulated,
	}

	t.state = stateIdle
	t.sessionStart = time.Time{}
	t.segmentStart = time.Time{}
	t.accumulated = 0

	return fin, nil
}

// Elapsed reports the total accumulated seconds, including the open
// segment when running. It never mutates state and is safe to poll at
// any frequency.
func (t *SessionTimer) Elapsed() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == stateRunning {
		return t.accumulated + timeNow().Sub(t.segmentStart).Seconds()
	}

	return t.accumulated
}

// Running reports whether time is currently accumulating.
func (t *SessionTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state == stateRunning
}

// Active reports whether a session has been started and not yet
// stopped.
func (t *SessionTimer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state != stateIdle
}

// SessionStart returns the wall-clock instant the session was first
// started.
func (t *SessionTimer) SessionStart() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sessionStart
}
