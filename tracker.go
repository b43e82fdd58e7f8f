package deadline

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"

	"github.com/go-i2p/deadline/stopwatch"
)

var log = logger.GetGoI2PLogger()

var (
	// ErrNegativeDeadline is returned by SetDeadline for a negative value.
	// The previously configured deadline is left unchanged.
	ErrNegativeDeadline = errors.New("deadline must be greater than or equal to 0")

	// ErrNoDeadline is returned by MillisBeforeDeadline when the tracker is
	// unbounded. Callers must gate the call behind HasDeadline.
	ErrNoDeadline = errors.New("tracker does not have a deadline set")
)

// Clock is the monotonic elapsed-time source a Tracker composes. It must
// measure elapsed time from its last Start after a Reset, and the reading
// must never decrease while running. *stopwatch.Stopwatch satisfies Clock.
type Clock interface {
	Start()
	Reset()
	IsRunning() bool
	Elapsed() time.Duration
}

// Tracker couples a running Clock with a millisecond deadline budget.
// A deadline of 0 means no deadline. Not safe for concurrent mutation.
type Tracker struct {
	clock    Clock
	deadline int64
}

// NewTracker returns a Tracker whose clock starts right now, with no
// deadline set.
func NewTracker() *Tracker {
	return NewTrackerWithClock(stopwatch.New())
}

// NewTrackerWithClock returns a Tracker measuring from this instant using
// the supplied clock. A clock that is already running is reset first, so
// elapsed time never carries over from whatever the caller did with it.
func NewTrackerWithClock(clock Clock) *Tracker {
	if clock.IsRunning() {
		clock.Reset()
	}
	clock.Start()
	log.WithFields(logger.Fields{
		"at": "(Tracker) NewTrackerWithClock",
	}).Debug("deadline tracker started")
	return &Tracker{clock: clock}
}

// HasDeadline reports whether a non-zero deadline is set.
func (t *Tracker) HasDeadline() bool {
	return t.deadline != 0
}

// TimedOut reports whether the deadline has been reached or passed. It is
// always false for a tracker with no deadline.
func (t *Tracker) TimedOut() bool {
	if !t.HasDeadline() {
		return false
	}
	return t.deadline-t.ElapsedMillis() <= 0
}

// MillisBeforeDeadline returns the number of milliseconds left before the
// deadline is reached. The value is used to hand the remaining budget down
// to RPCs, for which a deadline of 0 means no deadline and a negative
// deadline is rejected, so once the deadline has passed this returns exactly
// 1 rather than 0 or a negative value.
//
// Returns ErrNoDeadline if no deadline is set; conceptually the answer would
// be infinite, and a numeric stand-in would invite arithmetic misuse.
func (t *Tracker) MillisBeforeDeadline() (int64, error) {
	if !t.HasDeadline() {
		log.WithFields(logger.Fields{
			"at": "(Tracker) MillisBeforeDeadline",
		}).Error("called without a deadline set")
		return 0, oops.Wrapf(ErrNoDeadline, "cannot answer MillisBeforeDeadline")
	}
	remaining := t.deadline - t.ElapsedMillis()
	if remaining <= 0 {
		remaining = 1
	}
	return remaining, nil
}

// ElapsedMillis returns the clock's elapsed time since the tracker was
// created or last Reset, in milliseconds.
func (t *Tracker) ElapsedMillis() int64 {
	return t.clock.Elapsed().Milliseconds()
}

// WouldSleepingTimeout reports whether sleeping for plannedSleepMillis would
// put the caller past the deadline. Always false for a tracker with no
// deadline. Backoff loops use this to skip a sleep that could never be
// followed by a useful attempt.
func (t *Tracker) WouldSleepingTimeout(plannedSleepMillis int64) bool {
	if !t.HasDeadline() {
		return false
	}
	remaining := t.deadline - t.ElapsedMillis()
	if remaining <= 0 {
		remaining = 1
	}
	return remaining-plannedSleepMillis <= 0
}

// SetDeadline configures the budget, in milliseconds from the clock's start
// instant. 0 clears the deadline (the default). The clock is not restarted:
// time already elapsed keeps counting against the new deadline, which is how
// a caller tightens or loosens the budget mid-flight.
//
// Returns ErrNegativeDeadline for a negative value, leaving the previous
// deadline in place.
func (t *Tracker) SetDeadline(deadlineMillis int64) error {
	if deadlineMillis < 0 {
		log.WithFields(logger.Fields{
			"at":       "(Tracker) SetDeadline",
			"deadline": deadlineMillis,
		}).Error("rejecting negative deadline")
		return oops.Wrapf(ErrNegativeDeadline, "the passed value is %d", deadlineMillis)
	}
	t.deadline = deadlineMillis
	log.WithFields(logger.Fields{
		"at":       "(Tracker) SetDeadline",
		"deadline": deadlineMillis,
		"elapsed":  t.ElapsedMillis(),
	}).Debug("deadline updated")
	return nil
}

// Reset clears the deadline back to 0 (no deadline) and restarts the clock
// from zero elapsed time, readying the tracker for a fresh operation.
func (t *Tracker) Reset() {
	t.deadline = 0
	t.clock.Reset()
	t.clock.Start()
	log.WithFields(logger.Fields{
		"at": "(Tracker) Reset",
	}).Debug("deadline tracker reset")
}

// Deadline returns the configured deadline in milliseconds, 0 when unbounded.
func (t *Tracker) Deadline() int64 {
	return t.deadline
}

func (t *Tracker) String() string {
	return fmt.Sprintf("DeadlineTracker(timeout=%d, elapsed=%d)", t.deadline, t.ElapsedMillis())
}
