// Package ringqueue implements a queue of strings on an intrusive circular
// doubly-linked list with a sentinel head.
//
// Besides insertion and removal at both ends it offers in-place structural
// operations: delete-middle, adjacent duplicate removal, pairwise swap,
// reversal, k-group reversal, a stable merge sort, monotonic filtering and
// a merge of several sorted queues.
//
// Every element and queue is allocated from an Arena. Inserted strings are
// copied once; afterwards elements move between and within queues by
// relinking only. RemoveHead and RemoveTail hand ownership of an element to
// the caller, who releases it with Element.Release. Free releases the rest.
// An arena whose queues have all been freed reports zero live blocks.
//
// Queues are not safe for concurrent use. Wrap a queue in a Guarded to
// serialise access, and use MergeGuarded to merge guarded queues.
package ringqueue
