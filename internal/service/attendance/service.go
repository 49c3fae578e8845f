package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/pkg/i18n"
	"github.com/workclock/attendance-core-go/internal/pkg/timeutil"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holidaySvc holiday.HolidayService
	loc        *time.Location
}

// ApplyClockEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApplyClockEvent(ctx context.Context, event clocklog.ClockEvent) (attendance.ApplyResult, error) {
	record, created, warning, err := a.locateOrCreate(ctx, event.EmployeeID, event.Date)
	if err != nil {
		return attendance.ApplyResult{}, err
	}

	t := event.Time
	switch event.Direction {
	case clocklog.DirectionIn:
		record.ClockIn = &t
		record.ClockInStatus = event.Status
	case clocklog.DirectionOut:
		record.ClockOut = &t
		record.ClockOutStatus = event.Status
	default:
		return attendance.ApplyResult{}, fmt.Errorf("unknown clock direction %q", event.Direction)
	}

	if event.RawLine != "" && !validator.IsInSlice(event.RawLine, record.RawLines) {
		record.RawLines = append(record.RawLines, event.RawLine)
	}

	a.recompute(record)

	if err := a.persist(ctx, record, created); err != nil {
		return attendance.ApplyResult{}, err
	}

	return attendance.ApplyResult{Record: *record, Created: created, Warning: warning}, nil
}

// ApplyCorrection implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApplyCorrection(ctx context.Context, input attendance.CorrectionInput) (attendance.AttendanceRecord, error) {
	if err := input.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	record, created, _, err := a.locateOrCreate(ctx, input.EmployeeID, input.Date)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	// Re-applying the same correction is a no-op.
	if record.HasCorrection(input.Sequence) {
		return *record, nil
	}

	t := input.Time
	switch input.Direction {
	case clocklog.DirectionIn:
		record.ClockIn = &t
		record.ClockInStatus = attendance.ClockStatusManual
	case clocklog.DirectionOut:
		record.ClockOut = &t
		record.ClockOutStatus = attendance.ClockStatusManual
	default:
		return attendance.AttendanceRecord{}, fmt.Errorf("unknown clock direction %q", input.Direction)
	}

	record.Corrections = append(record.Corrections, input.Sequence)
	a.recompute(record)

	if err := a.persist(ctx, record, created); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	return *record, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, date string) ([]attendance.AttendanceRecord, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, fmt.Errorf("invalid date %q", date)
	}

	records, err := a.AttendanceRepository.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return records, nil
}

// GetAttendanceRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendanceRange(ctx context.Context, employeeID, start, end string) ([]attendance.AttendanceRecord, error) {
	startDay, ok := validator.IsValidDate(start)
	if !ok {
		return nil, fmt.Errorf("invalid start date %q", start)
	}
	endDay, ok := validator.IsValidDate(end)
	if !ok {
		return nil, fmt.Errorf("invalid end date %q", end)
	}
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("end date %q before start date %q", end, start)
	}

	var ids []string
	if employeeID != "" {
		ids = []string{employeeID}
	}

	records, err := a.AttendanceRepository.GetRange(ctx, ids, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance range: %w", err)
	}
	return records, nil
}

// MarkAbsences implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAbsences(ctx context.Context, date string) (int, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return 0, fmt.Errorf("invalid date %q", date)
	}

	if timeutil.IsWeekend(day, a.loc) {
		return 0, nil
	}
	if a.holidaySvc != nil {
		isHoliday, err := a.holidaySvc.IsHoliday(ctx, date)
		if err != nil {
			return 0, fmt.Errorf("failed to check holiday: %w", err)
		}
		if isHoliday {
			return 0, nil
		}
	}

	employees, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	count := 0
	now := time.Now().In(a.loc)
	for _, emp := range employees {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.EmployeeID, date)
		if err != nil {
			return count, fmt.Errorf("failed to look up attendance: %w", err)
		}
		if existing != nil {
			continue
		}

		record := attendance.AttendanceRecord{
			ID:           uuid.NewString(),
			EmployeeID:   emp.EmployeeID,
			LegacyID:     emp.LegacyID,
			EmployeeName: emp.Name,
			Department:   emp.Department,
			Date:         date,
			IsAbsent:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := a.AttendanceRepository.Create(ctx, record); err != nil {
			return count, fmt.Errorf("failed to create absence record: %w", err)
		}
		count++
	}

	return count, nil
}

// locateOrCreate returns the record for the key, building a fresh one with a
// directory snapshot when none exists. A missing directory entry is not an
// error; the warning carries it instead and the snapshot fields stay blank.
func (a *AttendanceServiceImpl) locateOrCreate(ctx context.Context, employeeID, date string) (*attendance.AttendanceRecord, bool, string, error) {
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, false, "", fmt.Errorf("failed to look up attendance: %w", err)
	}
	if existing != nil {
		return existing, false, "", nil
	}

	now := time.Now().In(a.loc)
	record := &attendance.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var warning string
	emp, err := a.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	switch {
	case err == nil:
		record.LegacyID = emp.LegacyID
		record.EmployeeName = emp.Name
		record.Department = emp.Department
	case errors.Is(err, employee.ErrEmployeeNotFound):
		warning = i18n.T(ctx, "import.unknownEmployee", map[string]any{"EmployeeID": employeeID})
	default:
		return nil, false, "", fmt.Errorf("failed to look up employee: %w", err)
	}

	return record, true, warning, nil
}

// recompute rederives worked minutes and the late, early-leave, and absent
// flags from the record's current clock instants.
func (a *AttendanceServiceImpl) recompute(record *attendance.AttendanceRecord) {
	day, err := time.ParseInLocation("2006-01-02", record.Date, a.loc)
	if err != nil {
		return
	}

	record.IsAbsent = record.ClockIn == nil

	if record.ClockIn != nil {
		record.IsLate = record.ClockIn.In(a.loc).After(timeutil.WorkdayStartOn(day, a.loc))
	} else {
		record.IsLate = false
	}

	if record.ClockOut != nil {
		record.IsEarlyLeave = record.ClockOut.In(a.loc).Before(timeutil.WorkdayEndOn(day, a.loc))
	} else {
		record.IsEarlyLeave = false
	}

	if record.ClockIn != nil && record.ClockOut != nil {
		record.WorkedMinutes = timeutil.MinutesBetween(*record.ClockIn, *record.ClockOut)
	} else {
		record.WorkedMinutes = 0
	}
}

func (a *AttendanceServiceImpl) persist(ctx context.Context, record *attendance.AttendanceRecord, created bool) error {
	record.UpdatedAt = time.Now().In(a.loc)

	if created {
		if _, err := a.AttendanceRepository.Create(ctx, *record); err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	}
	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidaySvc holiday.HolidayService,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		holidaySvc:           holidaySvc,
		loc:                  loc,
	}
}
