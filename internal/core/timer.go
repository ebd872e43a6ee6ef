package core

import "time"

// FixedStep gates periodic work to a steady rate, carrying over any time
// that accumulates between polls.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing rate times per second. The first
// poll always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the firing rate. Non-positive rates fall back to 1/s.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 1
	}
	f.step = time.Second / time.Duration(rate)
}

// ShouldStep reports whether a period has elapsed since the last firing.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
