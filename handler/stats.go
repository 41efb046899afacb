package handler

import (
	"sync/atomic"

	"github.com/philipp01105/scopelog/core"
)

// Stats tracks handler statistics per level
type Stats struct {
	processed [3]atomic.Uint64
	failed    [3]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level.Valid() {
		s.processed[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	if level.Valid() {
		s.failed[level].Add(1)
	}
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.processed[level].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed map[core.Level]uint64
	Failed    map[core.Level]uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, 3),
		Failed:    make(map[core.Level]uint64, 3),
	}
	for _, level := range []core.Level{core.InfoLevel, core.WarnLevel, core.ErrorLevel} {
		snap.Processed[level] = s.GetProcessed(level)
		snap.Failed[level] = s.GetFailed(level)
	}
	return snap
}
