package ability

// epsilon absorbs float drift from summing frame deltas.
const epsilon = 1e-9

// timer runs one ability through Ready -> Active -> Cooldown -> Ready.
// Durations are captured at start so a config reload never stretches a
// phase that is already running.
type timer struct {
	phase    Phase
	elapsed  float64
	duration float64
	cooldown float64
}

func (t *timer) start(duration, cooldown float64) {
	t.phase = Active
	t.elapsed = 0
	t.duration = duration
	t.cooldown = cooldown
}

// advance moves the timer forward by dt and carries leftover time across
// phase boundaries. ended reports that the active phase finished during
// this call.
func (t *timer) advance(dt float64) (ended bool) {
	if t.phase == Ready {
		return false
	}
	t.elapsed += dt
	for {
		switch t.phase {
		case Active:
			if t.elapsed+epsilon < t.duration {
				return ended
			}
			t.elapsed -= t.duration
			t.phase = Cooldown
			ended = true
		case Cooldown:
			if t.elapsed+epsilon < t.cooldown {
				return ended
			}
			t.phase = Ready
			t.elapsed = 0
			return ended
		default:
			return ended
		}
	}
}

func (t *timer) remaining() float64 {
	switch t.phase {
	case Active:
		return max(t.duration-t.elapsed, 0)
	case Cooldown:
		return max(t.cooldown-t.elapsed, 0)
	}
	return 0
}

// lease holds the undo for an external effect. Release runs it at most once.
type lease struct {
	undo func()
}

func newLease(undo func()) *lease {
	return &lease{undo: undo}
}

func (l *lease) Release() {
	if l == nil || l.undo == nil {
		return
	}
	undo := l.undo
	l.undo = nil
	undo()
}
