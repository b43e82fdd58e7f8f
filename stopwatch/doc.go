// Package stopwatch provides a resettable monotonic elapsed-time source.
//
// Go's time.Now() includes a monotonic clock reading that is immune to wall
// clock adjustments (NTP corrections, manual time changes), and time.Since()
// uses that reading when computing durations. A Stopwatch captures its start
// instant with time.Now() and reads elapsed time with the monotonic
// component, so a running watch can never go backwards even if the system
// clock jumps.
//
// Unlike a plain "duration since process start" clock, a Stopwatch can be
// stopped, resumed and reset to zero, which is what deadline tracking across
// retry windows needs: each logical operation restarts the watch and measures
// its budget from that instant.
//
// A Stopwatch is a single-owner value: it is not safe for concurrent use.
// Callers sharing one across goroutines must supply their own locking.
//
// Usage:
//
//	sw := stopwatch.NewStarted()
//	// ... do work ...
//	if sw.ElapsedMillis() > budget {
//	    // Out of time
//	}
package stopwatch
