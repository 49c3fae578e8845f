package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/summary"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
	"github.com/workclock/attendance-core-go/internal/domain/user"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type SummaryServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	tripRepo       trip.TripRepository
	postClockRepo  postclock.PostClockRepository
	employeeRepo   employee.EmployeeRepository
	holidaySvc     holiday.HolidayService
	loc            *time.Location
}

// Aggregate implements summary.SummaryService.
func (s *SummaryServiceImpl) Aggregate(ctx context.Context, requester user.User, start, end string) (summary.Result, error) {
	startDay, ok := validator.IsValidDate(start)
	if !ok {
		return summary.Result{}, fmt.Errorf("invalid start date %q", start)
	}
	endDay, ok := validator.IsValidDate(end)
	if !ok {
		return summary.Result{}, fmt.Errorf("invalid end date %q", end)
	}
	if endDay.Before(startDay) {
		return summary.Result{}, fmt.Errorf("end date %q before start date %q", end, start)
	}

	employeeIDs, err := s.resolveScope(ctx, requester)
	if err != nil {
		return summary.Result{}, err
	}

	// Interval collections are matched against the local-day window of the
	// date range.
	rangeStart := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, s.loc)
	rangeEnd := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)

	attendanceRecords, err := s.attendanceRepo.GetRange(ctx, employeeIDs, start, end)
	if err != nil {
		return summary.Result{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	leaves, err := s.leaveRepo.GetApprovedInRange(ctx, employeeIDs, rangeStart, rangeEnd)
	if err != nil {
		return summary.Result{}, fmt.Errorf("failed to get leaves: %w", err)
	}

	trips, err := s.tripRepo.GetApprovedInRange(ctx, employeeIDs, rangeStart, rangeEnd)
	if err != nil {
		return summary.Result{}, fmt.Errorf("failed to get trips: %w", err)
	}

	postClocks, err := s.postClockRepo.GetApprovedInRange(ctx, employeeIDs, start, end)
	if err != nil {
		return summary.Result{}, fmt.Errorf("failed to get post-clock requests: %w", err)
	}

	holidays, err := s.holidaySvc.OccurrencesInRange(ctx, start, end)
	if err != nil {
		return summary.Result{}, fmt.Errorf("failed to get holidays: %w", err)
	}

	return summary.Result{
		Attendance:        attendanceRecords,
		AttendanceCount:   len(attendanceRecords),
		Leave:             leaves,
		LeaveCount:        len(leaves),
		BusinessTrip:      trips,
		BusinessTripCount: len(trips),
		PostClock:         postClocks,
		PostClockCount:    len(postClocks),
		Holiday:           holidays,
		HolidayCount:      len(holidays),
	}, nil
}

// resolveScope maps the requester's role to the set of visible employee ids.
// A nil return means no filter, which repositories treat as all employees.
func (s *SummaryServiceImpl) resolveScope(ctx context.Context, requester user.User) ([]string, error) {
	switch {
	case requester.Role.CanViewAll():
		return nil, nil

	case requester.Role == user.RoleManager:
		// A manager with no department only sees themselves.
		if requester.Department == "" {
			return []string{requester.EmployeeID}, nil
		}
		colleagues, err := s.employeeRepo.ListActiveByDepartment(ctx, requester.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to list department employees: %w", err)
		}
		ids := make([]string, 0, len(colleagues))
		for _, emp := range colleagues {
			ids = append(ids, emp.EmployeeID)
		}
		return ids, nil

	default:
		return []string{requester.EmployeeID}, nil
	}
}

func NewSummaryService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	tripRepo trip.TripRepository,
	postClockRepo postclock.PostClockRepository,
	employeeRepo employee.EmployeeRepository,
	holidaySvc holiday.HolidayService,
	loc *time.Location,
) summary.SummaryService {
	return &SummaryServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		tripRepo:       tripRepo,
		postClockRepo:  postClockRepo,
		employeeRepo:   employeeRepo,
		holidaySvc:     holidaySvc,
		loc:            loc,
	}
}
