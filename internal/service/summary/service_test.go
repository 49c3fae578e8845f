package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
	"github.com/workclock/attendance-core-go/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(context.Context, string, string) (*attendance.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(context.Context, attendance.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByDate(context.Context, string) ([]attendance.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetRange(_ context.Context, employeeIDs []string, start, end string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, record := range f.records {
		if record.Date < start || record.Date > end {
			continue
		}
		if employeeIDs != nil && !contains(employeeIDs, record.EmployeeID) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(context.Context, string) (*leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Update(context.Context, leave.LeaveRequest) error { return nil }

func (f *fakeLeaveRepo) GetApprovedByEmployee(context.Context, string, string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) GetApprovedInRange(_ context.Context, employeeIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.Status != request.StatusApproved {
			continue
		}
		if !req.Start.Before(end) || !req.End.After(start) {
			continue
		}
		if employeeIDs != nil && !contains(employeeIDs, req.EmployeeID) {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

type fakeTripRepo struct{}

func (fakeTripRepo) Create(_ context.Context, req trip.TripRequest) (trip.TripRequest, error) {
	return req, nil
}
func (fakeTripRepo) GetByID(context.Context, string) (*trip.TripRequest, error) { return nil, nil }
func (fakeTripRepo) Update(context.Context, trip.TripRequest) error             { return nil }
func (fakeTripRepo) GetApprovedInRange(context.Context, []string, time.Time, time.Time) ([]trip.TripRequest, error) {
	return nil, nil
}

type fakePostClockRepo struct{}

func (fakePostClockRepo) Create(_ context.Context, req postclock.PostClockRequest) (postclock.PostClockRequest, error) {
	return req, nil
}
func (fakePostClockRepo) GetByID(context.Context, string) (*postclock.PostClockRequest, error) {
	return nil, nil
}
func (fakePostClockRepo) Update(context.Context, postclock.PostClockRequest) error { return nil }
func (fakePostClockRepo) GetApprovedInRange(context.Context, []string, string, string) ([]postclock.PostClockRequest, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListActiveByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeHolidayService struct {
	occurrences []holiday.Occurrence
}

func (f *fakeHolidayService) CreateHoliday(context.Context, holiday.CreateHolidayInput) (holiday.Holiday, error) {
	return holiday.Holiday{}, nil
}
func (f *fakeHolidayService) DeleteHoliday(context.Context, string) error { return nil }
func (f *fakeHolidayService) OccurrencesInRange(context.Context, string, string) ([]holiday.Occurrence, error) {
	return f.occurrences, nil
}
func (f *fakeHolidayService) IsHoliday(context.Context, string) (bool, error) { return false, nil }

func record(employeeID, date string) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{ID: employeeID + date, EmployeeID: employeeID, Date: date}
}

func newTestEnv(t *testing.T) (*SummaryServiceImpl, *fakeAttendanceRepo, *fakeLeaveRepo) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	attendanceRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{}
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmployeeID: "10000001", Department: "2000", Active: true},
		{EmployeeID: "10000002", Department: "2000", Active: true},
		{EmployeeID: "10000003", Department: "3000", Active: true},
	}}

	svc := NewSummaryService(
		attendanceRepo,
		leaveRepo,
		fakeTripRepo{},
		fakePostClockRepo{},
		employees,
		&fakeHolidayService{occurrences: []holiday.Occurrence{
			{HolidayID: "h1", Name: "National Day", Date: "2025-10-10"},
		}},
		loc,
	).(*SummaryServiceImpl)

	return svc, attendanceRepo, leaveRepo
}

func TestAggregateAdminSeesAll(t *testing.T) {
	svc, attendanceRepo, _ := newTestEnv(t)
	ctx := context.Background()

	attendanceRepo.records = []attendance.AttendanceRecord{
		record("10000001", "2025-10-01"),
		record("10000003", "2025-10-02"),
	}

	result, err := svc.Aggregate(ctx, user.User{EmployeeID: "10000009", Role: user.RoleAdmin}, "2025-10-01", "2025-10-31")
	require.NoError(t, err)

	assert.Equal(t, 2, result.AttendanceCount)
	assert.Equal(t, 1, result.HolidayCount)
}

func TestAggregateManagerScopedToDepartment(t *testing.T) {
	svc, attendanceRepo, _ := newTestEnv(t)
	ctx := context.Background()

	attendanceRepo.records = []attendance.AttendanceRecord{
		record("10000001", "2025-10-01"),
		record("10000002", "2025-10-01"),
		record("10000003", "2025-10-01"),
	}

	manager := user.User{EmployeeID: "10000001", Department: "2000", Role: user.RoleManager}
	result, err := svc.Aggregate(ctx, manager, "2025-10-01", "2025-10-31")
	require.NoError(t, err)

	require.Equal(t, 2, result.AttendanceCount)
	for _, rec := range result.Attendance {
		assert.NotEqual(t, "10000003", rec.EmployeeID)
	}
}

func TestAggregateManagerWithoutDepartmentSeesSelf(t *testing.T) {
	svc, attendanceRepo, _ := newTestEnv(t)
	ctx := context.Background()

	attendanceRepo.records = []attendance.AttendanceRecord{
		record("10000001", "2025-10-01"),
		record("10000002", "2025-10-01"),
	}

	manager := user.User{EmployeeID: "10000001", Role: user.RoleManager}
	result, err := svc.Aggregate(ctx, manager, "2025-10-01", "2025-10-31")
	require.NoError(t, err)

	require.Equal(t, 1, result.AttendanceCount)
	assert.Equal(t, "10000001", result.Attendance[0].EmployeeID)
}

func TestAggregateEmployeeSeesSelfOnly(t *testing.T) {
	svc, attendanceRepo, leaveRepo := newTestEnv(t)
	ctx := context.Background()
	loc := svc.loc

	attendanceRepo.records = []attendance.AttendanceRecord{
		record("10000001", "2025-10-01"),
		record("10000002", "2025-10-01"),
	}
	leaveRepo.requests = []leave.LeaveRequest{
		{
			ID:         "lv-1",
			EmployeeID: "10000002",
			Status:     request.StatusApproved,
			Start:      time.Date(2025, 10, 2, 9, 0, 0, 0, loc),
			End:        time.Date(2025, 10, 2, 13, 0, 0, 0, loc),
		},
	}

	// An employee with no department still only sees their own records.
	result, err := svc.Aggregate(ctx, user.User{EmployeeID: "10000002", Role: user.RoleEmployee}, "2025-10-01", "2025-10-31")
	require.NoError(t, err)

	require.Equal(t, 1, result.AttendanceCount)
	assert.Equal(t, "10000002", result.Attendance[0].EmployeeID)
	assert.Equal(t, 1, result.LeaveCount)
}

func TestAggregateRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newTestEnv(t)

	_, err := svc.Aggregate(context.Background(), user.User{Role: user.RoleAdmin}, "2025-10-31", "2025-10-01")
	assert.Error(t, err)
}
