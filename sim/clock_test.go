package sim

import (
	"testing"
	"time"
)

func TestFixedStepFiresImmediately(t *testing.T) {
	fs := NewFixedStep(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Error("first poll should fire without waiting a full period")
	}
}

func TestFixedStepDefaultPeriod(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Period(); got != 60*time.Millisecond {
		t.Errorf("default period = %v, want 60ms", got)
	}
}

func TestFixedStepSetPeriod(t *testing.T) {
	fs := NewFixedStep(60 * time.Millisecond)

	fs.SetPeriod(20 * time.Millisecond)
	if got := fs.Period(); got != 20*time.Millisecond {
		t.Errorf("period = %v, want 20ms", got)
	}

	// Non-positive values are ignored, not applied.
	fs.SetPeriod(0)
	if got := fs.Period(); got != 20*time.Millisecond {
		t.Errorf("period after SetPeriod(0) = %v, want 20ms", got)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	fs.ShouldStep() // drain the initial tick

	time.Sleep(25 * time.Millisecond)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired < 2 {
		t.Errorf("25ms of elapsed time produced %d ticks, want at least 2", fired)
	}
}
