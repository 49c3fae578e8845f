package postclock

import "context"

type PostClockRepository interface {
	Create(ctx context.Context, req PostClockRequest) (PostClockRequest, error)

	GetByID(ctx context.Context, id string) (*PostClockRequest, error)

	Update(ctx context.Context, req PostClockRequest) error

	// GetApprovedInRange returns approved requests with date in [start, end].
	// A nil employeeIDs slice means no employee filter.
	GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end string) ([]PostClockRequest, error)
}
