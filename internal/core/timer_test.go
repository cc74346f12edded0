package core

import (
	"testing"
	"time"
)

func TestFixedStepGatesOnInterval(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(1000, 0)
	fs.Reset(start)
	if fs.Due(start.Add(99 * time.Millisecond)) {
		t.Fatal("should not be due before the interval elapses")
	}
	if !fs.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("should be due once the interval elapses")
	}
	if fs.Due(start.Add(150 * time.Millisecond)) {
		t.Fatal("should not be due twice within one interval")
	}
	// A long stall yields one step, not a burst.
	if !fs.Due(start.Add(2 * time.Second)) {
		t.Fatal("should be due after a stall")
	}
	if fs.Due(start.Add(2*time.Second + time.Millisecond)) {
		t.Fatal("missed intervals must not be replayed")
	}
}

func TestFixedStepFirstCallArms(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("interval %v, want default", fs.Interval())
	}
	now := time.Unix(5, 0)
	if fs.Due(now) {
		t.Fatal("first call on an unarmed gate must not step")
	}
	if !fs.Due(now.Add(DefaultInterval)) {
		t.Fatal("expected step one interval after arming")
	}
}
