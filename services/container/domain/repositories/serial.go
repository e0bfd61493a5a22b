package repositories

import "github.com/ghuser/freightbox/services/container/domain/models"

// SerialAllocator hands out container serials that are unique for the
// lifetime of the process. The domain layer owns this interface;
// infrastructure implements it.
//
// Allocate must be safe for concurrent use and must never return the same
// serial twice. Once the 6-digit space is used up it returns
// domain.ErrSerialSpaceExhausted on every call.
type SerialAllocator interface {
	Allocate() (models.Serial, error)
}
