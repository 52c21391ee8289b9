package core

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Member is a lockable participant with a fixed position in the global lock
// order.
type Member interface {
	sync.Locker
	Order() uint64
}

var sequence atomic.Uint64

// NextOrder hands out lock positions. Members created earlier lock first.
func NextOrder() uint64 {
	return sequence.Add(1)
}

// AcquireAll locks every distinct member in ascending Order and returns a
// function that unlocks them in reverse. Nil members are skipped. Locking in
// one global order keeps two overlapping AcquireAll calls from deadlocking.
func AcquireAll(members ...Member) (release func()) {
	ordered := make([]Member, 0, len(members))
	for _, m := range members {
		if m != nil {
			ordered = append(ordered, m)
		}
	}
	slices.SortFunc(ordered, func(a, b Member) int {
		switch {
		case a.Order() < b.Order():
			return -1
		case a.Order() > b.Order():
			return 1
		}
		return 0
	})
	ordered = slices.CompactFunc(ordered, func(a, b Member) bool {
		return a.Order() == b.Order()
	})

	for _, m := range ordered {
		m.Lock()
	}
	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			ordered[i].Unlock()
		}
	}
}
