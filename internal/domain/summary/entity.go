package summary

import (
	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
)

// Result carries the aggregated collections for a date range, kept separate
// rather than merged into one synthetic timeline. Each collection has its
// own count so callers can render totals without re-counting.
type Result struct {
	Attendance      []attendance.AttendanceRecord `json:"attendance"`
	AttendanceCount int                           `json:"attendanceCount"`

	Leave      []leave.LeaveRequest `json:"leave"`
	LeaveCount int                  `json:"leaveCount"`

	BusinessTrip      []trip.TripRequest `json:"businessTrip"`
	BusinessTripCount int                `json:"businessTripCount"`

	PostClock      []postclock.PostClockRequest `json:"postClock"`
	PostClockCount int                          `json:"postClockCount"`

	Holiday      []holiday.Occurrence `json:"holiday"`
	HolidayCount int                  `json:"holidayCount"`
}
