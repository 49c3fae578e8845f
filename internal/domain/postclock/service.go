package postclock

import "context"

type PostClockService interface {
	CreatePostClock(ctx context.Context, input CreatePostClockInput) (PostClockRequest, error)

	// ApprovePostClock flips the status and applies the correction to the
	// attendance record for (employee, date), creating the record if absent.
	ApprovePostClock(ctx context.Context, requestID, approverID string) (PostClockRequest, error)

	RejectPostClock(ctx context.Context, input RejectPostClockInput) (PostClockRequest, error)

	CancelPostClock(ctx context.Context, requestID string) (PostClockRequest, error)
}
