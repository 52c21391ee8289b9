package ringqueue

import (
	"bytes"

	"github.com/timzifer/ringqueue/internal/telemetry"
)

// compare orders elements by their payload bytes.
func compare(a, b *Element) int {
	return bytes.Compare(a.payload(), b.payload())
}

// Sort orders the queue by payload bytes, ascending unless descend is set.
// The sort is stable and relinks nodes only; no payload is copied.
func (q *Queue) Sort(descend bool) {
	if !q.live() || q.head.Empty() || q.head.Singular() {
		return
	}
	defer q.metrics.Time(telemetry.OpSort)()
	q.head.Sort(compare, descend)
}
