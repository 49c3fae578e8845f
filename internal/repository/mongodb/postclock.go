package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/postclock"
	"github.com/workclock/attendance-core-go/internal/domain/request"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type PostClockRepositoryImpl struct {
	collection *mongo.Collection
}

func NewPostClockRepository(ctx context.Context, db *database.DB) (postclock.PostClockRepository, error) {
	collection := db.Collection("postclock_requests")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create post-clock indexes: %w", err)
	}

	return &PostClockRepositoryImpl{collection: collection}, nil
}

// Create implements postclock.PostClockRepository.
func (r *PostClockRepositoryImpl) Create(ctx context.Context, req postclock.PostClockRequest) (postclock.PostClockRequest, error) {
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return postclock.PostClockRequest{}, fmt.Errorf("failed to insert post-clock request: %w", err)
	}
	return req, nil
}

// GetByID implements postclock.PostClockRepository.
func (r *PostClockRepositoryImpl) GetByID(ctx context.Context, id string) (*postclock.PostClockRequest, error) {
	var req postclock.PostClockRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post-clock request: %w", err)
	}
	return &req, nil
}

// Update implements postclock.PostClockRepository.
func (r *PostClockRepositoryImpl) Update(ctx context.Context, req postclock.PostClockRequest) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return fmt.Errorf("failed to update post-clock request: %w", err)
	}
	if result.MatchedCount == 0 {
		return postclock.ErrPostClockNotFound
	}
	return nil
}

// GetApprovedInRange implements postclock.PostClockRepository.
func (r *PostClockRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeIDs []string, start, end string) ([]postclock.PostClockRequest, error) {
	filter := bson.M{
		"status": request.StatusApproved,
		"date":   bson.M{"$gte": start, "$lte": end},
	}
	if employeeIDs != nil {
		filter["employee_id"] = bson.M{"$in": employeeIDs}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find post-clock requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []postclock.PostClockRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode post-clock requests: %w", err)
	}
	return requests, nil
}
