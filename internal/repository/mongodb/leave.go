package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/leave"
	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type LeaveRepositoryImpl struct {
	collection *mongo.Collection
}

func NewLeaveRepository(ctx context.Context, db *database.DB) (leave.LeaveRepository, error) {
	collection := db.Collection("leave_requests")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "start", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create leave indexes: %w", err)
	}

	return &LeaveRepositoryImpl{collection: collection}, nil
}

// Create implements leave.LeaveRepository.
func (r *LeaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to insert leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *LeaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find leave request: %w", err)
	}
	return &req, nil
}

// Update implements leave.LeaveRepository.
func (r *LeaveRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if result.MatchedCount == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// GetApprovedByEmployee implements leave.LeaveRepository.
func (r *LeaveRepositoryImpl) GetApprovedByEmployee(ctx context.Context, employeeID, excludeID string) ([]leave.LeaveRequest, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"status":      request.StatusApproved,
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return r.find(ctx, filter)
}

// GetApprovedInRange implements leave.LeaveRepository.
func (r *LeaveRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]leave.LeaveRequest, error) {
	filter := bson.M{
		"status": request.StatusApproved,
		"start":  bson.M{"$lt": end},
		"end":    bson.M{"$gt": start},
	}
	if employeeIDs != nil {
		filter["employee_id"] = bson.M{"$in": employeeIDs}
	}
	return r.find(ctx, filter)
}

func (r *LeaveRepositoryImpl) find(ctx context.Context, filter bson.M) ([]leave.LeaveRequest, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []leave.LeaveRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}
	return requests, nil
}
