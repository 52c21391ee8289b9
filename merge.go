package ringqueue

import (
	"github.com/timzifer/ringqueue/internal/list"
	"github.com/timzifer/ringqueue/internal/telemetry"
)

// Context references one queue taking part in a merge. It does not own the
// queue.
type Context struct {
	Queue *Queue
	// Size is the queue size as of the last Add or Merge.
	Size int
	ID   int

	chain list.Head[Context]
}

// Chain links contexts into a ring so several queues can be merged. The zero
// value is an empty chain ready to use.
type Chain struct {
	head   list.Head[Context]
	nextID int
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	c := &Chain{}
	c.head.Init()
	return c
}

func (c *Chain) lazyInit() {
	if c.head.Next() == nil {
		c.head.Init()
	}
}

// Add appends a context for q and returns it. IDs count up from zero in the
// order contexts are added.
func (c *Chain) Add(q *Queue) *Context {
	if c == nil {
		return nil
	}
	c.lazyInit()
	ctx := &Context{Queue: q, Size: q.Size(), ID: c.nextID}
	c.nextID++
	ctx.chain.Bind(ctx)
	c.head.InsertBefore(&ctx.chain)
	return ctx
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	c.lazyInit()
	return c.head.Len()
}

// Contexts returns the contexts in chain order.
func (c *Chain) Contexts() []*Context {
	if c == nil {
		return nil
	}
	c.lazyInit()
	var out []*Context
	for cur := c.head.Next(); cur != &c.head; cur = cur.Next() {
		out = append(out, cur.Entry())
	}
	return out
}

// Merge moves the elements of every queue in the chain into the first
// context's queue, leaving the others empty, sorts the result and returns
// its size. Each input is expected to be sorted in the same direction.
// Returns 0 for an empty chain.
func (c *Chain) Merge(descend bool) int {
	if c == nil {
		return 0
	}
	c.lazyInit()
	if c.head.Empty() {
		return 0
	}
	first := c.head.Next().Entry()
	dst := first.Queue
	if !dst.live() {
		return 0
	}
	defer dst.metrics.Time(telemetry.OpMerge)()

	for cur := first.chain.Next(); cur != &c.head; cur = cur.Next() {
		other := cur.Entry()
		if other.Queue == dst || !other.Queue.live() {
			continue
		}
		dst.head.SpliceAfter(&other.Queue.head)
	}
	dst.Sort(descend)

	// a queue may sit in more than one context
	for cur := c.head.Next(); cur != &c.head; cur = cur.Next() {
		ctx := cur.Entry()
		ctx.Size = ctx.Queue.Size()
	}
	return first.Size
}
