package counter

import "context"

// Counter keys, one per request entity type. Sequence numbers are assigned
// once at creation and never reused.
const (
	KeyLeaveRequest     = "leave_request"
	KeyPostClockRequest = "postclock_request"
	KeyTripRequest      = "trip_request"
)

// CounterRepository hands out per-key monotonically increasing sequence
// numbers. Implementations must guarantee that no two callers ever receive
// the same value for the same key, using the storage layer's atomic
// increment primitive.
type CounterRepository interface {
	NextValue(ctx context.Context, key string) (int64, error)
}
