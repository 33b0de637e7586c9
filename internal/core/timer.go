package core

import "time"

// FixedStep reports when a periodic action is due, driven from a frame loop
// instead of a background goroutine.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep firing once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the firing interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	f.step = interval
}

// Interval returns the current firing interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart discards accumulated time so the next firing is a full interval away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether the action is due. At most one firing is
// reported per call; a long stall does not queue a burst of steps.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
