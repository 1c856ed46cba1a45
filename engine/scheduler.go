package engine

import "time"

type scheduledEntry struct {
	due time.Time
	fn  func(*Match)
}

// Scheduler is a due-time event queue drained by the match every tick
// Entries are fire-and-forget: nothing cancels them, late entries still run
type Scheduler struct {
	entries []scheduledEntry
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries: make([]scheduledEntry, 0, 4),
	}
}

// Schedule registers fn to run on the first tick at or after due
// Maintains sorted order via insertion sort; equal due times keep registration order
func (s *Scheduler) Schedule(due time.Time, fn func(*Match)) {
	entry := scheduledEntry{due: due, fn: fn}

	pos := len(s.entries)
	for i, e := range s.entries {
		if due.Before(e.due) {
			pos = i
			break
		}
	}

	s.entries = append(s.entries, scheduledEntry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = entry
}

// RunDue executes every entry due at or before now, earliest first
// Returns the number of entries executed
func (s *Scheduler) RunDue(now time.Time, m *Match) int {
	ran := 0
	for len(s.entries) > 0 && !s.entries[0].due.After(now) {
		entry := s.entries[0]
		s.entries = s.entries[1:]
		entry.fn(m)
		ran++
	}
	return ran
}

// Pending returns the number of entries not yet run
func (s *Scheduler) Pending() int {
	return len(s.entries)
}
