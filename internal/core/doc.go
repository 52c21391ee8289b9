// Package core serialises operations that span several independently locked
// queues by acquiring their locks in one global order.
package core
