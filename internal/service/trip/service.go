package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workclock/attendance-core-go/internal/domain/counter"
	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
)

type TripServiceImpl struct {
	trip.TripRepository
	employee.EmployeeRepository
	counterRepo counter.CounterRepository
	loc         *time.Location
}

// CreateTrip implements trip.TripService.
func (t *TripServiceImpl) CreateTrip(ctx context.Context, input trip.CreateTripInput) (trip.TripRequest, error) {
	if err := input.Validate(); err != nil {
		return trip.TripRequest{}, err
	}
	if !input.End.After(input.Start) {
		return trip.TripRequest{}, trip.ErrTripEndBeforeStart
	}

	emp, err := t.EmployeeRepository.GetByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	sequence, err := t.counterRepo.NextValue(ctx, counter.KeyTripRequest)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to assign sequence: %w", err)
	}

	now := time.Now().In(t.loc)
	req := trip.TripRequest{
		ID:           uuid.NewString(),
		Sequence:     sequence,
		EmployeeID:   input.EmployeeID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		Destination:  input.Destination,
		Purpose:      input.Purpose,
		Start:        input.Start,
		End:          input.End,
		Status:       request.StatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := t.TripRepository.Create(ctx, req)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to create trip request: %w", err)
	}
	return created, nil
}

// ApproveTrip implements trip.TripService.
func (t *TripServiceImpl) ApproveTrip(ctx context.Context, requestID, approverID string) (trip.TripRequest, error) {
	req, err := t.TripRepository.GetByID(ctx, requestID)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to get trip request: %w", err)
	}
	if req == nil {
		return trip.TripRequest{}, trip.ErrTripNotFound
	}
	if req.Status.Processed() {
		return trip.TripRequest{}, trip.ErrTripAlreadyProcessed
	}

	req.Status = request.StatusApproved
	req.ApproverID = &approverID
	req.UpdatedAt = time.Now().In(t.loc)

	if err := t.TripRepository.Update(ctx, *req); err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to update trip request: %w", err)
	}
	return *req, nil
}

// RejectTrip implements trip.TripService.
func (t *TripServiceImpl) RejectTrip(ctx context.Context, input trip.RejectTripInput) (trip.TripRequest, error) {
	if err := input.Validate(); err != nil {
		return trip.TripRequest{}, err
	}

	req, err := t.TripRepository.GetByID(ctx, input.RequestID)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to get trip request: %w", err)
	}
	if req == nil {
		return trip.TripRequest{}, trip.ErrTripNotFound
	}
	if req.Status.Processed() {
		return trip.TripRequest{}, trip.ErrTripAlreadyProcessed
	}

	req.Status = request.StatusRejected
	req.ApproverID = &input.ApproverID
	req.RejectReason = &input.Reason
	req.UpdatedAt = time.Now().In(t.loc)

	if err := t.TripRepository.Update(ctx, *req); err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to update trip request: %w", err)
	}
	return *req, nil
}

// CancelTrip implements trip.TripService.
func (t *TripServiceImpl) CancelTrip(ctx context.Context, requestID string) (trip.TripRequest, error) {
	req, err := t.TripRepository.GetByID(ctx, requestID)
	if err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to get trip request: %w", err)
	}
	if req == nil {
		return trip.TripRequest{}, trip.ErrTripNotFound
	}

	req.Status = request.StatusCancel
	req.UpdatedAt = time.Now().In(t.loc)

	if err := t.TripRepository.Update(ctx, *req); err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to update trip request: %w", err)
	}
	return *req, nil
}

func NewTripService(
	tripRepo trip.TripRepository,
	employeeRepo employee.EmployeeRepository,
	counterRepo counter.CounterRepository,
	loc *time.Location,
) trip.TripService {
	return &TripServiceImpl{
		TripRepository:     tripRepo,
		EmployeeRepository: employeeRepo,
		counterRepo:        counterRepo,
		loc:                loc,
	}
}
