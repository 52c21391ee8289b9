// Package list provides the link node of an intrusive circular doubly-linked
// list with a sentinel head, and the pointer-level operations on it.
//
// A list is identified by its sentinel Head. Members embed a Head bound to
// the value that contains them; Entry recovers that value without pointer
// arithmetic. None of the operations here know what the owner type holds.
//
// Nothing in this package locks. Callers serialise access per ring.
package list
