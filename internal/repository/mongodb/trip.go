package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/domain/trip"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type TripRepositoryImpl struct {
	collection *mongo.Collection
}

func NewTripRepository(ctx context.Context, db *database.DB) (trip.TripRepository, error) {
	collection := db.Collection("trip_requests")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "start", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create trip indexes: %w", err)
	}

	return &TripRepositoryImpl{collection: collection}, nil
}

// Create implements trip.TripRepository.
func (r *TripRepositoryImpl) Create(ctx context.Context, req trip.TripRequest) (trip.TripRequest, error) {
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return trip.TripRequest{}, fmt.Errorf("failed to insert trip request: %w", err)
	}
	return req, nil
}

// GetByID implements trip.TripRepository.
func (r *TripRepositoryImpl) GetByID(ctx context.Context, id string) (*trip.TripRequest, error) {
	var req trip.TripRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find trip request: %w", err)
	}
	return &req, nil
}

// Update implements trip.TripRepository.
func (r *TripRepositoryImpl) Update(ctx context.Context, req trip.TripRequest) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return fmt.Errorf("failed to update trip request: %w", err)
	}
	if result.MatchedCount == 0 {
		return trip.ErrTripNotFound
	}
	return nil
}

// GetApprovedInRange implements trip.TripRepository.
func (r *TripRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]trip.TripRequest, error) {
	filter := bson.M{
		"status": request.StatusApproved,
		"start":  bson.M{"$lt": end},
		"end":    bson.M{"$gt": start},
	}
	if employeeIDs != nil {
		filter["employee_id"] = bson.M{"$in": employeeIDs}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find trip requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []trip.TripRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode trip requests: %w", err)
	}
	return requests, nil
}
