package attendance

import (
	"context"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
)

// AttendanceService is the per-(employee, date) reconciler.
type AttendanceService interface {
	// ApplyClockEvent folds one parsed punch into the record for its key,
	// creating the record if absent. An employee id with no directory entry
	// is not an error; the result carries a warning instead.
	ApplyClockEvent(ctx context.Context, event clocklog.ClockEvent) (ApplyResult, error)

	// ApplyCorrection applies an approved post-clock correction, creating
	// the record if absent. The correction's sequence number is appended to
	// the record's correction list; re-applying the same sequence is a no-op.
	ApplyCorrection(ctx context.Context, input CorrectionInput) (AttendanceRecord, error)

	GetAttendance(ctx context.Context, date string) ([]AttendanceRecord, error)

	// GetAttendanceRange returns records in [start, end]; employeeID may be
	// empty to return all employees.
	GetAttendanceRange(ctx context.Context, employeeID, start, end string) ([]AttendanceRecord, error)

	// MarkAbsences creates absent records for active employees with no
	// record on the given date. Weekends and holidays are skipped. Returns
	// the number of records created.
	MarkAbsences(ctx context.Context, date string) (int, error)
}
