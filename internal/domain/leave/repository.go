package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (*LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) error

	// GetApprovedByEmployee returns all approved requests for the employee.
	// excludeID skips one request id, used when the approval path re-checks
	// a request against everything but itself; pass "" to exclude nothing.
	GetApprovedByEmployee(ctx context.Context, employeeID, excludeID string) ([]LeaveRequest, error)

	// GetApprovedInRange returns approved requests whose interval intersects
	// [start, end] for the given employees. A nil employeeIDs slice means no
	// employee filter.
	GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]LeaveRequest, error)
}
