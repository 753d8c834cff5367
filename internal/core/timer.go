package core

import "time"

// FixedStep paces simulation updates at a steady rate independent of the
// frame rate. A non-positive rate disables pacing: every call steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given number of
// steps per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		f.step = 0
	} else {
		f.step = time.Second / time.Duration(rate)
	}
	f.Reset()
}

// Unthrottled reports whether pacing is disabled.
func (f *FixedStep) Unthrottled() bool { return f.step == 0 }

// Reset forgets elapsed time so the next ShouldStep fires immediately. Call it
// when resuming from a pause to avoid a catch-up burst.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	// Lag beyond one step is dropped.
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
