// Package serial provides the process-wide container serial allocator.
package serial

import (
	"fmt"
	"sync/atomic"

	"github.com/ghuser/freightbox/services/container/domain"
	"github.com/ghuser/freightbox/services/container/domain/models"
)

// DefaultStart is the first serial issued when no start is configured.
const DefaultStart = 1337

// Allocator issues serials from a single atomic counter. Create exactly one
// per process and inject it wherever containers are built.
type Allocator struct {
	next         atomic.Int64
	resetEnabled bool
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithResetEnabled permits Reset. Only test setups should use it.
func WithResetEnabled() Option {
	return func(a *Allocator) { a.resetEnabled = true }
}

// NewAllocator returns an Allocator whose first serial is start.
func NewAllocator(start int, opts ...Option) (*Allocator, error) {
	if err := checkStart(start); err != nil {
		return nil, err
	}
	a := &Allocator{}
	for _, opt := range opts {
		opt(a)
	}
	a.next.Store(int64(start))
	return a, nil
}

// Allocate returns the current counter value and advances it by one.
// Concurrent callers always receive distinct serials. The counter stops at
// the end of the 6-digit space, so exhaustion is reported on every later call.
func (a *Allocator) Allocate() (models.Serial, error) {
	for {
		cur := a.next.Load()
		if cur > models.MaxSerial {
			return 0, fmt.Errorf("%w: all serials up to %d issued", domain.ErrSerialSpaceExhausted, models.MaxSerial)
		}
		if a.next.CompareAndSwap(cur, cur+1) {
			return models.Serial(cur), nil
		}
	}
}

// Remaining reports how many serials can still be issued.
func (a *Allocator) Remaining() int {
	left := models.MaxSerial + 1 - a.next.Load()
	if left < 0 {
		return 0
	}
	return int(left)
}

// Reset restarts numbering at start. It fails with domain.ErrResetNotPermitted
// unless the allocator was built with WithResetEnabled.
func (a *Allocator) Reset(start int) error {
	if !a.resetEnabled {
		return domain.ErrResetNotPermitted
	}
	if err := checkStart(start); err != nil {
		return err
	}
	a.next.Store(int64(start))
	return nil
}

func checkStart(start int) error {
	if start < 0 || start > models.MaxSerial {
		return fmt.Errorf("%w: start %d not in [0, %d]", domain.ErrInvalidSerial, start, models.MaxSerial)
	}
	return nil
}
