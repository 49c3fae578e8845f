package leave

import (
	"context"
	"fmt"
	"time"
)

// WouldOverlap implements leave.LeaveService. The comparison is strict
// half-open: adjacent intervals sharing a boundary instant do not overlap.
// excludeID lets the approval path re-check a request against everything but
// itself; pass "" to exclude nothing.
func (l *LeaveServiceImpl) WouldOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	approved, err := l.LeaveRepository.GetApprovedByEmployee(ctx, employeeID, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to get approved leaves: %w", err)
	}

	for _, existing := range approved {
		if start.Before(existing.End) && end.After(existing.Start) {
			return true, nil
		}
	}
	return false, nil
}
