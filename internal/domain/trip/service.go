package trip

import "context"

type TripService interface {
	CreateTrip(ctx context.Context, input CreateTripInput) (TripRequest, error)

	ApproveTrip(ctx context.Context, requestID, approverID string) (TripRequest, error)

	RejectTrip(ctx context.Context, input RejectTripInput) (TripRequest, error)

	CancelTrip(ctx context.Context, requestID string) (TripRequest, error)
}
