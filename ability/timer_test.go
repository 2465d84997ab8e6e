package ability

import "testing"

func TestTimerPhases(t *testing.T) {
	var tm timer
	if tm.advance(1) {
		t.Fatal("idle timer reported an end")
	}

	tm.start(0.5, 1)
	steps := []struct {
		dt        float64
		wantEnded bool
		wantPhase Phase
	}{
		{0.25, false, Active},
		{0.25, true, Cooldown},
		{0.5, false, Cooldown},
		{0.5, false, Ready},
	}
	for i, s := range steps {
		if ended := tm.advance(s.dt); ended != s.wantEnded {
			t.Fatalf("step %d: ended = %v, want %v", i, ended, s.wantEnded)
		}
		if tm.phase != s.wantPhase {
			t.Fatalf("step %d: phase = %v, want %v", i, tm.phase, s.wantPhase)
		}
	}
}

func TestTimerSkipsWholeWindowInOneStep(t *testing.T) {
	var tm timer
	tm.start(0.2, 1)

	if !tm.advance(5) {
		t.Fatal("active end not reported")
	}
	if tm.phase != Ready {
		t.Errorf("phase = %v, want ready", tm.phase)
	}
	if tm.remaining() != 0 {
		t.Errorf("remaining = %v", tm.remaining())
	}
}

func TestTimerZeroCooldown(t *testing.T) {
	var tm timer
	tm.start(0.1, 0)

	tm.advance(0.1)
	if tm.phase != Ready {
		t.Errorf("phase = %v, want ready", tm.phase)
	}
}

func TestLeaseReleasesOnce(t *testing.T) {
	calls := 0
	l := newLease(func() { calls++ })
	l.Release()
	l.Release()

	var nilLease *lease
	nilLease.Release()

	if calls != 1 {
		t.Errorf("undo ran %d times", calls)
	}
}
