package core

import "time"

// DefaultInterval is the wall-clock gap between generations while running.
const DefaultInterval = 100 * time.Millisecond

// FixedStep gates simulation advances to at most one per interval.
type FixedStep struct {
	step time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep with the given interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the advance interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval returns the configured advance interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset re-arms the gate so the next advance waits a full interval from now.
func (f *FixedStep) Reset(now time.Time) { f.last = now }

// Due reports whether the simulation should advance by one generation at now.
// Missed intervals are dropped rather than replayed.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) < f.step {
		return false
	}
	f.last = now
	return true
}
