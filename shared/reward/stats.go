package reward

import "time"

// Stats is the persisted record of completed claims.
type Stats struct {
	TotalClaims int       `json:"totalClaims"`
	Streak      int       `json:"streak"`
	LastClaimAt time.Time `json:"lastClaimAt"`
}

// Record counts a completed claim at now. Claims on consecutive calendar
// days (in now's location) extend the streak, a gap resets it to one and a
// second claim on the same day leaves it unchanged.
func (s *Stats) Record(now time.Time) {
	s.TotalClaims++

	switch days := daysBetween(s.LastClaimAt, now); {
	case s.LastClaimAt.IsZero() || s.Streak == 0:
		s.Streak = 1
	case days == 0:
	case days == 1:
		s.Streak++
	default:
		s.Streak = 1
	}
	s.LastClaimAt = now
}

func daysBetween(from, to time.Time) int {
	loc := to.Location()
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Saver tracks whether Stats still need writing and spaces out retries after
// a failed write. Call Due once per tick.
type Saver struct {
	RetryTicks int

	dirty bool
	wait  int
}

// MarkDirty schedules a write on the next Due.
func (s *Saver) MarkDirty() {
	s.dirty = true
	s.wait = 0
}

// Dirty reports whether a write is still pending.
func (s *Saver) Dirty() bool { return s.dirty }

// Due reports whether a write should be attempted this tick.
func (s *Saver) Due() bool {
	if !s.dirty {
		return false
	}
	if s.wait > 0 {
		s.wait--
		return false
	}
	return true
}

// Done records the outcome of a write. A failed write stays pending and is
// retried after RetryTicks ticks.
func (s *Saver) Done(err error) {
	if err == nil {
		s.dirty = false
		s.wait = 0
		return
	}
	s.wait = s.RetryTicks
}
