package trip

import (
	"context"
	"time"
)

type TripRepository interface {
	Create(ctx context.Context, req TripRequest) (TripRequest, error)

	GetByID(ctx context.Context, id string) (*TripRequest, error)

	Update(ctx context.Context, req TripRequest) error

	// GetApprovedInRange returns approved trips whose interval intersects
	// [start, end]. A nil employeeIDs slice means no employee filter.
	GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]TripRequest, error)
}
