package httptransport

import "sync/atomic"

type stats struct {
	sent   atomic.Uint64
	failed atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Sent   uint64
	Failed uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Sent:   s.sent.Load(),
		Failed: s.failed.Load(),
	}
}

func (s *stats) reset() {
	s.sent.Store(0)
	s.failed.Store(0)
}
