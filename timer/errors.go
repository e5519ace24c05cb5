package timer

import "errors"

var (
	// ErrAlreadyRunning is reported when starting or resuming a timer
	// that is already accumulating time.
	ErrAlreadyRunning = errors.New("the timer is already running")

	// ErrNotRunning is reported when pausing a timer that is not
	// accumulating time, or resuming one that was never started.
	ErrNotRunning = errors.New("no timer is running")

	// ErrNoActiveSession is reported when stopping a timer with no
	// started session.
	ErrNoActiveSession = errors.New("no active or paused session to stop")
)
