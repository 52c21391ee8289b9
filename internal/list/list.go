package list

// Head is the link embedded in every member of a circular doubly-linked list
// and also serves as the list's sentinel. A sentinel's owner is nil.
//
// A Head must not be copied once it has been initialised: the ring stores
// its address.
type Head[T any] struct {
	next, prev *Head[T]
	owner      *T
}

// Init makes h an empty ring (or a detached node) pointing to itself.
func (h *Head[T]) Init() *Head[T] {
	h.next = h
	h.prev = h
	return h
}

// Bind initialises h and records the value that embeds it.
func (h *Head[T]) Bind(owner *T) *Head[T] {
	h.owner = owner
	return h.Init()
}

// Entry returns the value embedding h, nil for a sentinel.
func (h *Head[T]) Entry() *T { return h.owner }

// Next returns the following node. For a list head that is the first node,
// or h itself when the list is empty.
func (h *Head[T]) Next() *Head[T] { return h.next }

// Prev returns the preceding node.
func (h *Head[T]) Prev() *Head[T] { return h.prev }

// Empty reports whether the ring rooted at h has no members.
func (h *Head[T]) Empty() bool {
	return h.next == h
}

// Singular reports whether the ring rooted at h has exactly one member.
func (h *Head[T]) Singular() bool {
	return !h.Empty() && h.next == h.prev
}

// Len walks the ring. There is no cached count.
func (h *Head[T]) Len() int {
	n := 0
	for cur := h.next; cur != h; cur = cur.next {
		n++
	}
	return n
}

// link puts n between prev and next.
func link[T any](n, prev, next *Head[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// InsertAfter links n directly after h.
func (h *Head[T]) InsertAfter(n *Head[T]) {
	link(n, h, h.next)
}

// InsertBefore links n directly before h. With h as the sentinel this
// appends at the tail.
func (h *Head[T]) InsertBefore(n *Head[T]) {
	link(n, h.prev, h)
}

// Unlink removes n from whatever ring it is on and leaves it detached.
func (n *Head[T]) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.Init()
}

// MoveAfter unlinks n and relinks it directly after h.
func (h *Head[T]) MoveAfter(n *Head[T]) {
	n.Unlink()
	h.InsertAfter(n)
}

// MoveBefore unlinks n and relinks it directly before h.
func (h *Head[T]) MoveBefore(n *Head[T]) {
	n.Unlink()
	h.InsertBefore(n)
}

// splice links the members of other between prev and next. other itself
// is left stale and must be reinitialised by the caller.
func splice[T any](other, prev, next *Head[T]) {
	first := other.next
	last := other.prev

	first.prev = prev
	prev.next = first

	last.next = next
	next.prev = last
}

// SpliceAfter moves every member of other to the front of h, in order,
// and leaves other empty.
func (h *Head[T]) SpliceAfter(other *Head[T]) {
	if other.Empty() {
		return
	}
	splice(other, h, h.next)
	other.Init()
}

// SpliceBefore moves every member of other to the back of h, in order,
// and leaves other empty.
func (h *Head[T]) SpliceBefore(other *Head[T]) {
	if other.Empty() {
		return
	}
	splice(other, h.prev, h)
	other.Init()
}

// Reverse flips the ring in place by swapping next and prev on every node,
// the sentinel included.
func (h *Head[T]) Reverse() {
	if h.Empty() {
		return
	}
	cur := h
	for {
		cur.next, cur.prev = cur.prev, cur.next
		cur = cur.prev // the old next
		if cur == h {
			return
		}
	}
}

// Middle returns the middle member using a fast/slow walk. For an even
// number of members it returns the upper middle. Nil if the ring is empty.
func (h *Head[T]) Middle() *Head[T] {
	if h.Empty() {
		return nil
	}
	slow, fast := h.next, h.next
	for fast != h && fast.next != h {
		fast = fast.next.next
		slow = slow.next
	}
	return slow
}

// Valid checks the ring invariant next.prev == n && prev.next == n for every
// node reachable from h, with a bound of limit hops (limit <= 0 means no
// bound).
func (h *Head[T]) Valid(limit int) bool {
	if h.next == nil || h.prev == nil {
		return false
	}
	cur := h
	for hops := 0; ; hops++ {
		if limit > 0 && hops > limit {
			return false
		}
		if cur.next == nil || cur.prev == nil {
			return false
		}
		if cur.next.prev != cur || cur.prev.next != cur {
			return false
		}
		cur = cur.next
		if cur == h {
			return true
		}
		if cur.owner == nil {
			// a second sentinel: two rings were cross-linked
			return false
		}
	}
}
