package ringqueue

import (
	"sync"

	"github.com/timzifer/ringqueue/internal/core"
)

// Guarded pairs a queue with the exclusive lock every call on it must hold.
type Guarded struct {
	mu    sync.Mutex
	q     *Queue
	order uint64
}

func NewGuarded(q *Queue) *Guarded {
	return &Guarded{q: q, order: core.NextOrder()}
}

// Do runs fn with the queue while holding its lock.
func (g *Guarded) Do(fn func(q *Queue)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.q)
}

type guardMember struct{ g *Guarded }

func (m guardMember) Lock()         { m.g.mu.Lock() }
func (m guardMember) Unlock()       { m.g.mu.Unlock() }
func (m guardMember) Order() uint64 { return m.g.order }

// MergeGuarded merges the queues of gs into the first one, as Chain.Merge,
// holding every involved lock for the whole merge. Locks are taken in a
// fixed global order so concurrent merges over overlapping queues cannot
// deadlock.
func MergeGuarded(descend bool, gs ...*Guarded) int {
	members := make([]core.Member, 0, len(gs))
	for _, g := range gs {
		if g != nil {
			members = append(members, guardMember{g})
		}
	}
	release := core.AcquireAll(members...)
	defer release()

	var chain Chain
	for _, g := range gs {
		if g != nil {
			chain.Add(g.q)
		}
	}
	return chain.Merge(descend)
}
