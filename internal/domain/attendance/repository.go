package attendance

import "context"

// AttendanceRepository defines data access for attendance records. The
// reconciler always looks up by (employeeID, date) before writing, which is
// what makes log re-imports idempotent.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByEmployeeAndDate returns nil when no record exists for the key.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*AttendanceRecord, error)

	Update(ctx context.Context, record AttendanceRecord) error

	GetByDate(ctx context.Context, date string) ([]AttendanceRecord, error)

	// GetRange returns records with date in [start, end]. A nil employeeIDs
	// slice means no employee filter.
	GetRange(ctx context.Context, employeeIDs []string, start, end string) ([]AttendanceRecord, error)
}
