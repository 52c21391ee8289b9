package telemetry

import (
	"sync/atomic"
	"time"
)

// Op identifies a counted queue operation.
type Op int

const (
	OpInsert Op = iota
	OpRemove
	OpRelease
	OpDelete
	OpSort
	OpReverse
	OpSwap
	OpMerge
	OpAllocFailure
	numOps
)

var opNames = [numOps]string{
	OpInsert:       "insert",
	OpRemove:       "remove",
	OpRelease:      "release",
	OpDelete:       "delete",
	OpSort:         "sort",
	OpReverse:      "reverse",
	OpSwap:         "swap",
	OpMerge:        "merge",
	OpAllocFailure: "alloc_failure",
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return "unknown"
	}
	return opNames[op]
}

// Ops lists every counted operation in a stable order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Metrics collects operation counts and accumulated durations.
type Metrics struct {
	counts    [numOps]atomic.Uint64
	durations [numOps]atomic.Int64
}

var defaultMetrics Metrics

// Default returns the process-wide metrics.
func Default() *Metrics {
	return &defaultMetrics
}

func (m *Metrics) Add(op Op, n int) {
	if m == nil || n <= 0 || op < 0 || op >= numOps {
		return
	}
	m.counts[op].Add(uint64(n))
}

func (m *Metrics) Inc(op Op) { m.Add(op, 1) }

// Time counts op once and returns a function that records its duration.
func (m *Metrics) Time(op Op) func() {
	if m == nil || op < 0 || op >= numOps {
		return func() {}
	}
	start := time.Now()
	m.counts[op].Add(1)
	return func() {
		m.durations[op].Add(time.Since(start).Nanoseconds())
	}
}

func (m *Metrics) Count(op Op) uint64 {
	if m == nil || op < 0 || op >= numOps {
		return 0
	}
	return m.counts[op].Load()
}

// Snapshot returns the count of op and the average duration recorded by Time.
func (m *Metrics) Snapshot(op Op) (count uint64, average time.Duration) {
	count = m.Count(op)
	if count == 0 {
		return 0, 0
	}
	total := m.durations[op].Load()
	return count, time.Duration(total / int64(count))
}

// Reset zeroes every counter.
func (m *Metrics) Reset() {
	for i := range m.counts {
		m.counts[i].Store(0)
		m.durations[i].Store(0)
	}
}
