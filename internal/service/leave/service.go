package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workclock/attendance-core-go/internal/domain/counter"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/pkg/timeutil"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	counterRepo counter.CounterRepository
	loc         *time.Location
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, input leave.CreateLeaveInput) (leave.LeaveRequest, error) {
	if err := input.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := l.validateInterval(input.Start, input.End); err != nil {
		return leave.LeaveRequest{}, err
	}

	overlaps, err := l.WouldOverlap(ctx, input.EmployeeID, input.Start, input.End, "")
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if overlaps {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	emp, err := l.EmployeeRepository.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	sequence, err := l.counterRepo.NextValue(ctx, counter.KeyLeaveRequest)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to assign sequence: %w", err)
	}

	minutes := timeutil.WorkingMinutes(input.Start, input.End, l.loc)
	if input.RoundToBlocks {
		minutes = timeutil.RoundToHalfDayBlocks(minutes)
	}
	hours, mins := timeutil.HoursMinutes(minutes)

	now := time.Now().In(l.loc)
	parts := timeutil.Decompose(now, l.loc)

	req := leave.LeaveRequest{
		ID:              uuid.NewString(),
		Sequence:        sequence,
		EmployeeID:      input.EmployeeID,
		EmployeeName:    emp.Name,
		Department:      emp.Department,
		Type:            input.Type,
		Reason:          input.Reason,
		Start:           input.Start,
		End:             input.End,
		CreatedYear:     parts.Year,
		CreatedMonth:    parts.Month,
		CreatedDay:      parts.Day,
		DurationHours:   hours,
		DurationMinutes: mins,
		Status:          request.StatusCreated,
		Attachments:     input.Attachments,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := l.LeaveRepository.Create(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// ApproveLeave implements leave.LeaveService. The overlap check is repeated
// here because other requests may have been approved since this one was
// filed.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, requestID, approverID string) (leave.LeaveRequest, error) {
	req, err := l.LeaveRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if req == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if req.Status.Processed() {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	overlaps, err := l.WouldOverlap(ctx, req.EmployeeID, req.Start, req.End, req.ID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if overlaps {
		return leave.LeaveRequest{}, leave.ErrOverlappingLeave
	}

	req.Status = request.StatusApproved
	req.ApproverID = &approverID
	req.UpdatedAt = time.Now().In(l.loc)

	if err := l.LeaveRepository.Update(ctx, *req); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return *req, nil
}

// RejectLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, input leave.RejectLeaveInput) (leave.LeaveRequest, error) {
	if err := input.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	req, err := l.LeaveRepository.GetByID(ctx, input.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if req == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if req.Status.Processed() {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	req.Status = request.StatusRejected
	req.ApproverID = &input.ApproverID
	req.RejectReason = &input.Reason
	req.UpdatedAt = time.Now().In(l.loc)

	if err := l.LeaveRepository.Update(ctx, *req); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return *req, nil
}

// CancelLeave implements leave.LeaveService. Cancel is a soft override
// reachable from any state, including processed ones.
func (l *LeaveServiceImpl) CancelLeave(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	req, err := l.LeaveRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if req == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	req.Status = request.StatusCancel
	req.UpdatedAt = time.Now().In(l.loc)

	if err := l.LeaveRepository.Update(ctx, *req); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return *req, nil
}

// validateInterval enforces the workday policy on a proposed leave window.
// Boundaries inside the lunch break, including its exact start, are rejected;
// the lunch end boundary is legal.
func (l *LeaveServiceImpl) validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return leave.ErrEndBeforeStart
	}

	startLocal := start.In(l.loc)
	endLocal := end.In(l.loc)

	if startLocal.Before(timeutil.WorkdayStartOn(startLocal, l.loc)) {
		return leave.ErrOutsideWorkday
	}
	if endLocal.After(timeutil.FlexEndOn(endLocal, l.loc)) {
		return leave.ErrOutsideWorkday
	}

	if l.inLunchBreak(startLocal) || l.inLunchBreak(endLocal) {
		return leave.ErrLunchBoundary
	}
	return nil
}

// inLunchBreak reports whether t falls in [lunch start, lunch end).
func (l *LeaveServiceImpl) inLunchBreak(t time.Time) bool {
	return !t.Before(timeutil.LunchStartOn(t, l.loc)) && t.Before(timeutil.LunchEndOn(t, l.loc))
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	counterRepo counter.CounterRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		counterRepo:        counterRepo,
		loc:                loc,
	}
}
