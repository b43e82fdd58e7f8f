// Package deadline tracks how much of a time budget remains for an operation
// that may be attempted several times, such as a remote call retried with
// backoff under one overall timeout.
//
// A Tracker wraps a monotonic stopwatch together with a deadline expressed in
// milliseconds from the watch's start instant. The watch starts as soon as
// the Tracker is created, with a deadline of 0 meaning that there is no
// deadline. The deadline has been reached once the watch's elapsed time is
// equal to or greater than the configured deadline.
//
// Two numeric contracts matter to callers and are deliberate:
//
//   - A deadline of 0 means "unbounded". TimedOut and WouldSleepingTimeout
//     always report false for an unbounded tracker, and
//     MillisBeforeDeadline refuses to answer (ErrNoDeadline) rather than
//     return a sentinel a caller might feed into arithmetic.
//   - MillisBeforeDeadline never returns a value below 1. Once the deadline
//     has passed it returns exactly 1, so the result can be passed straight
//     to wait primitives where 0 or negative often means "block forever".
//
// Usage in a retry loop:
//
//	tracker := deadline.NewTracker()
//	if err := tracker.SetDeadline(5000); err != nil {
//	    return err
//	}
//	for !tracker.TimedOut() {
//	    if attempt(tracker) == nil {
//	        return nil
//	    }
//	    if tracker.WouldSleepingTimeout(backoff.Milliseconds()) {
//	        break
//	    }
//	    time.Sleep(backoff)
//	}
//
// A Tracker is a single-owner value: SetDeadline and Reset mutate state with
// no internal locking. Use one Tracker per logical operation, or wrap shared
// access in a caller-owned mutex.
package deadline
