package stopwatch

import (
	"time"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// nowFunc is overridable for testing. Defaults to time.Now.
var nowFunc = time.Now

// Stopwatch measures elapsed time using the monotonic clock. It accumulates
// time across start/stop cycles until Reset() zeroes it.
//
// The zero value is a stopped watch with zero elapsed time, ready to use.
// Not safe for concurrent use.
type Stopwatch struct {
	// accumulated holds time measured during previous runs, i.e. before the
	// most recent Start().
	accumulated time.Duration
	startedAt   time.Time
	running     bool
}

// New returns a stopped Stopwatch with zero elapsed time.
func New() *Stopwatch {
	return &Stopwatch{}
}

// NewStarted returns a Stopwatch that is already running.
func NewStarted() *Stopwatch {
	sw := New()
	sw.Start()
	return sw
}

// Start begins measuring elapsed time. Starting a watch that is already
// running is a no-op.
func (sw *Stopwatch) Start() {
	if sw.running {
		log.WithFields(logger.Fields{
			"at":      "(Stopwatch) Start",
			"elapsed": sw.Elapsed().String(),
		}).Debug("stopwatch already running, ignoring Start")
		return
	}
	sw.startedAt = nowFunc()
	sw.running = true
}

// Stop pauses the watch, retaining the elapsed time measured so far. A later
// Start() resumes from that value. Stopping a watch that is not running is a
// no-op.
func (sw *Stopwatch) Stop() {
	if !sw.running {
		log.WithFields(logger.Fields{
			"at":      "(Stopwatch) Stop",
			"elapsed": sw.accumulated.String(),
		}).Debug("stopwatch not running, ignoring Stop")
		return
	}
	sw.accumulated += nowFunc().Sub(sw.startedAt)
	sw.running = false
}

// Reset stops the watch and zeroes its elapsed time.
func (sw *Stopwatch) Reset() {
	sw.accumulated = 0
	sw.startedAt = time.Time{}
	sw.running = false
}

// IsRunning reports whether the watch is currently measuring.
func (sw *Stopwatch) IsRunning() bool {
	return sw.running
}

// Elapsed returns the total time measured: everything accumulated before the
// last Stop() plus, if running, the time since the last Start(). The reading
// is monotonic and non-decreasing while the watch runs.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.running {
		return sw.accumulated + nowFunc().Sub(sw.startedAt)
	}
	return sw.accumulated
}

// ElapsedMillis returns Elapsed() truncated to whole milliseconds.
func (sw *Stopwatch) ElapsedMillis() int64 {
	return sw.Elapsed().Milliseconds()
}

func (sw *Stopwatch) String() string {
	return sw.Elapsed().String()
}
