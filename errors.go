package ringqueue

import (
	"github.com/pkg/errors"

	"github.com/timzifer/ringqueue/internal/arena"
)

var (
	// ErrAllocation is returned when the arena refuses an allocation.
	ErrAllocation = arena.ErrExhausted
	// ErrInvalidArgument is returned for a nil or freed queue.
	ErrInvalidArgument = errors.New("ringqueue: invalid argument")
)
