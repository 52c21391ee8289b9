package ringqueue

import (
	"bytes"

	"github.com/timzifer/ringqueue/internal/list"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// DeleteMid deletes the middle element. With an even count the element just
// past the centre goes: [1 2 3 4] loses 3. False on an empty queue.
func (q *Queue) DeleteMid() bool {
	if !q.live() || q.head.Empty() {
		return false
	}
	q.destroy(q.head.Middle().Entry())
	return true
}

// DeleteDup deletes every element that belongs to a run of two or more
// adjacent equal payloads, the first of the run included. Only adjacent runs
// are found, so the queue is expected to be sorted. False on an empty queue.
func (q *Queue) DeleteDup() bool {
	if !q.live() || q.head.Empty() {
		return false
	}
	lastDup := false
	for cur := q.head.Next(); cur != &q.head; {
		next := cur.Next()
		matchNext := next != &q.head &&
			bytes.Equal(cur.Entry().payload(), next.Entry().payload())
		if matchNext || lastDup {
			q.destroy(cur.Entry())
		}
		lastDup = matchNext
		cur = next
	}
	return true
}

// Swap exchanges every two adjacent elements. An odd last element stays.
func (q *Queue) Swap() {
	if !q.live() {
		return
	}
	q.metrics.Inc(telemetry.OpSwap)
	for cur := q.head.Next(); cur != &q.head && cur.Next() != &q.head; cur = cur.Next() {
		cur.Next().MoveAfter(cur)
	}
}

// Reverse reverses the queue in place.
func (q *Queue) Reverse() {
	if !q.live() || q.head.Empty() {
		return
	}
	q.head.Reverse()
	q.metrics.Inc(telemetry.OpReverse)
}

// ReverseK reverses each consecutive group of k elements. A trailing group
// shorter than k keeps its order. k < 2 does nothing.
func (q *Queue) ReverseK(k int) {
	if !q.live() || q.head.Empty() || k < 2 {
		return
	}

	var result, group list.Head[Element]
	result.Init()
	group.Init()

	count := 0
	for cur := q.head.Next(); cur != &q.head; {
		next := cur.Next()
		group.MoveBefore(cur)
		if count++; count == k {
			group.Reverse()
			result.SpliceBefore(&group)
			count = 0
		}
		cur = next
	}
	result.SpliceBefore(&group)
	q.head.SpliceAfter(&result)
	q.metrics.Inc(telemetry.OpReverse)
}

// Ascend deletes every element that is greater than some element after it,
// leaving a non-decreasing queue, and returns the new size.
func (q *Queue) Ascend() int {
	return q.keepMonotonic(func(c int) bool { return c > 0 })
}

// Descend deletes every element that is less than some element after it,
// leaving a non-increasing queue, and returns the new size.
func (q *Queue) Descend() int {
	return q.keepMonotonic(func(c int) bool { return c < 0 })
}

// keepMonotonic scans from the second-to-last element towards the head and
// deletes an element when violates(compare(element, successor)) holds.
func (q *Queue) keepMonotonic(violates func(c int) bool) int {
	if !q.live() || q.head.Empty() {
		return 0
	}
	for cur := q.head.Prev().Prev(); cur != &q.head; {
		prev := cur.Prev()
		if violates(compare(cur.Entry(), cur.Next().Entry())) {
			q.destroy(cur.Entry())
		}
		cur = prev
	}
	return q.Size()
}
