// Package arena accounts for every block a queue allocates and releases.
//
// The Go runtime owns the memory; the arena owns the ledger. It hands out
// typed records and byte buffers, refuses allocations beyond its limits and
// tracks live blocks so a leak or a double release shows up in Stats.
package arena

import (
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrExhausted is returned when an allocation would exceed the arena limits.
var ErrExhausted = errors.New("arena: allocation limit reached")

// Limits bound the live contents of an arena. Zero means unbounded.
type Limits struct {
	MaxBlocks int64
	MaxBytes  int64
}

// Stats is a point-in-time view of the ledger.
type Stats struct {
	Blocks   int64 // live blocks
	Bytes    int64 // live bytes
	Allocs   uint64
	Frees    uint64
	Failures uint64
}

// Arena is safe for concurrent use so several independently locked queues
// can share one.
type Arena struct {
	limits Limits
	log    *zap.Logger

	blocks   atomic.Int64
	bytes    atomic.Int64
	allocs   atomic.Uint64
	frees    atomic.Uint64
	failures atomic.Uint64
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger limit hits are reported to.
func WithLogger(log *zap.Logger) Option {
	return func(a *Arena) {
		if log != nil {
			a.log = log.Named("arena")
		}
	}
}

// NewArena returns an empty arena bounded by limits. Zero limits mean
// unbounded.
func NewArena(limits Limits, opts ...Option) *Arena {
	a := &Arena{
		limits: limits,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// reserve books one block of size bytes, or fails without changing the ledger.
func (a *Arena) reserve(size int64) error {
	blocks := a.blocks.Add(1)
	bytes := a.bytes.Add(size)
	if (a.limits.MaxBlocks > 0 && blocks > a.limits.MaxBlocks) ||
		(a.limits.MaxBytes > 0 && bytes > a.limits.MaxBytes) {
		a.blocks.Add(-1)
		a.bytes.Add(-size)
		a.failures.Add(1)
		a.log.Debug("allocation refused",
			zap.Int64("size", size),
			zap.Int64("live_blocks", blocks-1),
			zap.Int64("live_bytes", bytes-size),
		)
		return errors.Wrapf(ErrExhausted, "allocate %d bytes", size)
	}
	a.allocs.Add(1)
	return nil
}

func (a *Arena) release(size int64) {
	a.blocks.Add(-1)
	a.bytes.Add(-size)
	a.frees.Add(1)
}

// Bytes allocates a zeroed buffer of exactly n bytes.
func (a *Arena) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("arena: negative size %d", n)
	}
	if err := a.reserve(int64(n)); err != nil {
		return nil, err
	}
	return make([]byte, n), nil
}

// FreeBytes returns a buffer obtained from Bytes. A nil buffer is ignored.
func (a *Arena) FreeBytes(b []byte) {
	if b == nil {
		return
	}
	a.release(int64(len(b)))
}

// Alloc allocates a zero T.
func Alloc[T any](a *Arena) (*T, error) {
	if err := a.reserve(sizeOf[T]()); err != nil {
		return nil, err
	}
	return new(T), nil
}

// Free returns p to the ledger and zeroes it so stale references observe an
// empty value. A nil p is ignored.
func Free[T any](a *Arena, p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
	a.release(sizeOf[T]())
}

func sizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

func (a *Arena) Stats() Stats {
	return Stats{
		Blocks:   a.blocks.Load(),
		Bytes:    a.bytes.Load(),
		Allocs:   a.allocs.Load(),
		Frees:    a.frees.Load(),
		Failures: a.failures.Load(),
	}
}

func (a *Arena) Limits() Limits { return a.limits }
