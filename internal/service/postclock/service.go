package postclock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/counter"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/request"
)

type PostClockServiceImpl struct {
	postclock.PostClockRepository
	employee.EmployeeRepository
	counterRepo   counter.CounterRepository
	attendanceSvc attendance.AttendanceService
	loc           *time.Location
}

// CreatePostClock implements postclock.PostClockService.
func (p *PostClockServiceImpl) CreatePostClock(ctx context.Context, input postclock.CreatePostClockInput) (postclock.PostClockRequest, error) {
	if err := input.Validate(); err != nil {
		return postclock.PostClockRequest{}, err
	}

	emp, err := p.EmployeeRepository.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	sequence, err := p.counterRepo.NextValue(ctx, counter.KeyPostClockRequest)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to assign sequence: %w", err)
	}

	now := time.Now().In(p.loc)
	req := postclock.PostClockRequest{
		ID:           uuid.NewString(),
		Sequence:     sequence,
		EmployeeID:   input.EmployeeID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		Date:         input.Date,
		ClockTime:    input.ClockTime,
		Direction:    input.Direction,
		Reason:       input.Reason,
		Status:       request.StatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := p.PostClockRepository.Create(ctx, req)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to create post-clock request: %w", err)
	}
	return created, nil
}

// ApprovePostClock implements postclock.PostClockService. Approval is the
// one request path with a cross-aggregate side effect: the correction is
// folded into the attendance record for (employee, date).
func (p *PostClockServiceImpl) ApprovePostClock(ctx context.Context, requestID, approverID string) (postclock.PostClockRequest, error) {
	req, err := p.PostClockRepository.GetByID(ctx, requestID)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to get post-clock request: %w", err)
	}
	if req == nil {
		return postclock.PostClockRequest{}, postclock.ErrPostClockNotFound
	}
	if req.Status.Processed() {
		return postclock.PostClockRequest{}, postclock.ErrPostClockAlreadyProcessed
	}

	req.Status = request.StatusApproved
	req.ApproverID = &approverID
	req.UpdatedAt = time.Now().In(p.loc)

	if err := p.PostClockRepository.Update(ctx, *req); err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to update post-clock request: %w", err)
	}

	correction := attendance.CorrectionInput{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Time:       req.ClockTime,
		Direction:  req.Direction,
		Sequence:   req.Sequence,
	}
	if _, err := p.attendanceSvc.ApplyCorrection(ctx, correction); err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to apply correction: %w", err)
	}

	return *req, nil
}

// RejectPostClock implements postclock.PostClockService.
func (p *PostClockServiceImpl) RejectPostClock(ctx context.Context, input postclock.RejectPostClockInput) (postclock.PostClockRequest, error) {
	if err := input.Validate(); err != nil {
		return postclock.PostClockRequest{}, err
	}

	req, err := p.PostClockRepository.GetByID(ctx, input.RequestID)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to get post-clock request: %w", err)
	}
	if req == nil {
		return postclock.PostClockRequest{}, postclock.ErrPostClockNotFound
	}
	if req.Status.Processed() {
		return postclock.PostClockRequest{}, postclock.ErrPostClockAlreadyProcessed
	}

	req.Status = request.StatusRejected
	req.ApproverID = &input.ApproverID
	req.RejectReason = &input.Reason
	req.UpdatedAt = time.Now().In(p.loc)

	if err := p.PostClockRepository.Update(ctx, *req); err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to update post-clock request: %w", err)
	}
	return *req, nil
}

// CancelPostClock implements postclock.PostClockService.
func (p *PostClockServiceImpl) CancelPostClock(ctx context.Context, requestID string) (postclock.PostClockRequest, error) {
	req, err := p.PostClockRepository.GetByID(ctx, requestID)
	if err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to get post-clock request: %w", err)
	}
	if req == nil {
		return postclock.PostClockRequest{}, postclock.ErrPostClockNotFound
	}

	req.Status = request.StatusCancel
	req.UpdatedAt = time.Now().In(p.loc)

	if err := p.PostClockRepository.Update(ctx, *req); err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to update post-clock request: %w", err)
	}
	return *req, nil
}

func NewPostClockService(
	postClockRepo postclock.PostClockRepository,
	employeeRepo employee.EmployeeRepository,
	counterRepo counter.CounterRepository,
	attendanceSvc attendance.AttendanceService,
	loc *time.Location,
) postclock.PostClockService {
	return &PostClockServiceImpl{
		PostClockRepository: postClockRepo,
		EmployeeRepository:  employeeRepo,
		counterRepo:         counterRepo,
		attendanceSvc:       attendanceSvc,
		loc:                 loc,
	}
}
