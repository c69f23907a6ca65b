package sink

import "sync/atomic"

// Stats tracks sink statistics
type Stats struct {
	written atomic.Uint64
	failed  atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written uint64
	Failed  uint64
}

func (s *Stats) record(err error) {
	if err != nil {
		s.failed.Add(1)
		return
	}
	s.written.Add(1)
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Written: s.written.Load(),
		Failed:  s.failed.Load(),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.written.Store(0)
	s.failed.Store(0)
}
