package ringqueue

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/timzifer/ringqueue/internal/arena"
	"github.com/timzifer/ringqueue/internal/list"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// Position selects the end of the queue an insertion goes to.
type Position int

const (
	// Front inserts at the head.
	Front Position = iota
	// Back inserts at the tail.
	Back
)

// Element is a queued string. It owns a NUL-terminated copy of the string
// made at insertion time; the copy moves with the element and is never
// duplicated again.
type Element struct {
	value   []byte
	link    list.Head[Element]
	arena   *arena.Arena
	metrics *telemetry.Metrics
}

// Value returns the payload. It is empty for a released element.
func (e *Element) Value() string {
	return string(e.payload())
}

func (e *Element) payload() []byte {
	if e == nil || len(e.value) == 0 {
		return nil
	}
	return e.value[:len(e.value)-1]
}

// CopyTo copies at most len(buf)-1 payload bytes into buf followed by a NUL
// and returns the number of payload bytes copied. A longer payload is
// truncated. Nothing is written to an empty buf.
func (e *Element) CopyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], e.payload())
	buf[n] = 0
	return n
}

// Release gives the element's buffer and record back to the arena it came
// from. It is a no-op on nil, on an already released element and on an
// element that is still linked into a queue.
func (e *Element) Release() {
	if e == nil || e.arena == nil || e.link.Next() != &e.link {
		return
	}
	a, m := e.arena, e.metrics
	a.FreeBytes(e.value)
	arena.Free(a, e)
	m.Inc(telemetry.OpRelease)
}

// Queue is a circular doubly-linked list of elements behind a sentinel.
//
// A Queue is not safe for concurrent use; see Guarded.
type Queue struct {
	head    list.Head[Element]
	arena   *arena.Arena
	log     *zap.Logger
	metrics *telemetry.Metrics
}

// New allocates an empty queue from the configured arena.
func New(opts ...Option) (*Queue, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := o.Arena
	if a == nil {
		a = arena.NewArena(o.Limits, arena.WithLogger(o.Logger))
	}

	q, err := arena.Alloc[Queue](a)
	if err != nil {
		o.Metrics.Inc(telemetry.OpAllocFailure)
		o.Logger.Debug("new queue failed", zap.Error(err))
		return nil, errors.Wrap(err, "ringqueue: new queue")
	}
	q.head.Init()
	q.arena = a
	q.log = o.Logger
	q.metrics = o.Metrics
	return q, nil
}

// live reports whether q is usable: non-nil and not yet freed.
func (q *Queue) live() bool {
	return q != nil && q.arena != nil
}

// Free releases every element and then the queue itself. q must not be
// used afterwards; further calls on it behave as on a nil queue.
func (q *Queue) Free() {
	if !q.live() {
		return
	}
	for cur := q.head.Next(); cur != &q.head; {
		next := cur.Next()
		q.destroy(cur.Entry())
		cur = next
	}
	arena.Free(q.arena, q)
}

// destroy unlinks e and releases it.
func (q *Queue) destroy(e *Element) {
	e.link.Unlink()
	e.Release()
	q.metrics.Inc(telemetry.OpDelete)
}

func (q *Queue) newElement(s string) (*Element, error) {
	e, err := arena.Alloc[Element](q.arena)
	if err != nil {
		return nil, err
	}
	buf, err := q.arena.Bytes(len(s) + 1)
	if err != nil {
		arena.Free(q.arena, e)
		return nil, err
	}
	copy(buf, s)

	e.value = buf
	e.arena = q.arena
	e.metrics = q.metrics
	e.link.Bind(e)
	return e, nil
}

// Insert links a new element holding a copy of s at pos. On failure the
// queue is unchanged and nothing stays allocated.
func (q *Queue) Insert(pos Position, s string) error {
	if !q.live() {
		return errors.Wrap(ErrInvalidArgument, "insert into nil or freed queue")
	}
	if pos != Front && pos != Back {
		q.log.Debug("insert with unknown position", zap.Int("position", int(pos)))
		return errors.Wrapf(ErrInvalidArgument, "unknown position %d", pos)
	}

	e, err := q.newElement(s)
	if err != nil {
		q.metrics.Inc(telemetry.OpAllocFailure)
		q.log.Debug("insert failed", zap.Int("len", len(s)), zap.Error(err))
		return errors.Wrap(err, "ringqueue: insert")
	}

	if pos == Front {
		q.head.InsertAfter(&e.link)
	} else {
		q.head.InsertBefore(&e.link)
	}
	q.metrics.Inc(telemetry.OpInsert)
	return nil
}

// InsertHead reports whether s was inserted at the head.
func (q *Queue) InsertHead(s string) bool {
	return q.Insert(Front, s) == nil
}

// InsertTail reports whether s was inserted at the tail.
func (q *Queue) InsertTail(s string) bool {
	return q.Insert(Back, s) == nil
}

// RemoveHead unlinks the first element and hands it to the caller, who is
// responsible for calling Release on it. If buf is non-empty the payload is
// copied into it as by CopyTo. Nil when the queue is empty.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if !q.live() || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is RemoveHead for the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if !q.live() || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

func (q *Queue) remove(n *list.Head[Element], buf []byte) *Element {
	e := n.Entry()
	n.Unlink()
	e.CopyTo(buf)
	q.metrics.Inc(telemetry.OpRemove)
	return e
}

// Size counts the elements. It walks the whole queue.
func (q *Queue) Size() int {
	if !q.live() {
		return 0
	}
	return q.head.Len()
}

// Values returns the payloads from head to tail.
func (q *Queue) Values() []string {
	if !q.live() {
		return nil
	}
	out := make([]string, 0, q.Size())
	for cur := q.head.Next(); cur != &q.head; cur = cur.Next() {
		out = append(out, cur.Entry().Value())
	}
	return out
}

// Valid reports whether every link in the queue points back at its
// neighbour. A nil or freed queue is not valid.
func (q *Queue) Valid() bool {
	return q.live() && q.head.Valid(0)
}
