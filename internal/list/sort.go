package list

// Sort orders the members of the ring rooted at h with a stable merge sort.
// cmp is a three-way comparison of the owners. Equal members keep their
// relative order in both directions.
//
// While sorting, the ring is a nil-terminated chain threaded through next
// only. It is re-threaded into a ring before Sort returns.
func (h *Head[T]) Sort(cmp func(a, b *T) int, descend bool) {
	if h.Empty() || h.Singular() {
		return
	}
	before := func(a, b *Head[T]) bool {
		c := cmp(a.owner, b.owner)
		if descend {
			return c >= 0
		}
		return c <= 0
	}

	h.prev.next = nil
	first := mergeSort(h.next, before)

	prev := h
	for cur := first; cur != nil; cur = cur.next {
		prev.next = cur
		cur.prev = prev
		prev = cur
	}
	prev.next = h
	h.prev = prev
}

func mergeSort[T any](first *Head[T], before func(a, b *Head[T]) bool) *Head[T] {
	if first == nil || first.next == nil {
		return first
	}
	slow, fast := first, first.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil
	return mergeChains(mergeSort(first, before), mergeSort(mid, before), before)
}

// mergeChains merges two sorted nil-terminated chains, preferring a on ties.
func mergeChains[T any](a, b *Head[T], before func(a, b *Head[T]) bool) *Head[T] {
	var anchor Head[T]
	tail := &anchor
	for a != nil && b != nil {
		if before(a, b) {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return anchor.next
}
