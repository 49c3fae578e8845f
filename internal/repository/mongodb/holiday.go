package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type HolidayRepositoryImpl struct {
	collection *mongo.Collection
}

func NewHolidayRepository(ctx context.Context, db *database.DB) (holiday.HolidayRepository, error) {
	collection := db.Collection("holidays")

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, fmt.Errorf("failed to create holiday index: %w", err)
	}

	return &HolidayRepositoryImpl{collection: collection}, nil
}

// Create implements holiday.HolidayRepository.
func (r *HolidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if _, err := r.collection.InsertOne(ctx, h); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}
	return h, nil
}

// GetByDate implements holiday.HolidayRepository.
func (r *HolidayRepositoryImpl) GetByDate(ctx context.Context, date string) (*holiday.Holiday, error) {
	var h holiday.Holiday
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find holiday: %w", err)
	}
	return &h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *HolidayRepositoryImpl) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	var h holiday.Holiday
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find holiday: %w", err)
	}
	return &h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *HolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if result.DeletedCount == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// List implements holiday.HolidayRepository.
func (r *HolidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find holidays: %w", err)
	}
	defer cursor.Close(ctx)

	var holidays []holiday.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	return holidays, nil
}
