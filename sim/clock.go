package sim

import "time"

// FixedStep decouples simulation cadence from the host loop: any driver
// (render frame, timer, or a test calling Step in a loop) polls ShouldStep
// and advances the world once per elapsed period.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller with the given tick period.
func NewFixedStep(period time.Duration) *FixedStep {
	if period <= 0 {
		period = 60 * time.Millisecond
	}
	fs := &FixedStep{step: period}
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the tick period. Safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period > 0 {
		f.step = period
	}
}

// Period returns the current tick period.
func (f *FixedStep) Period() time.Duration {
	return f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
