package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// CreateLeave validates the interval against workday policy and the
	// employee's approved leaves, then persists a created request. Conflicts
	// surface as ErrOverlappingLeave.
	CreateLeave(ctx context.Context, input CreateLeaveInput) (LeaveRequest, error)

	// ApproveLeave re-runs the overlap check before flipping the status,
	// since other requests may have been approved after this one was filed.
	ApproveLeave(ctx context.Context, requestID, approverID string) (LeaveRequest, error)

	RejectLeave(ctx context.Context, input RejectLeaveInput) (LeaveRequest, error)

	// CancelLeave is a soft override reachable from any state.
	CancelLeave(ctx context.Context, requestID string) (LeaveRequest, error)

	// WouldOverlap reports whether [start, end) conflicts with an approved
	// leave of the employee, excluding excludeID ("" to exclude nothing).
	WouldOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
}
