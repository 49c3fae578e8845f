package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type AttendanceRepositoryImpl struct {
	collection *mongo.Collection
}

// NewAttendanceRepository creates the repository and its indexes. The unique
// (employee_id, date) index backs the one-record-per-key invariant at the
// storage layer.
func NewAttendanceRepository(ctx context.Context, db *database.DB) (attendance.AttendanceRepository, error) {
	collection := db.Collection("attendance_records")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create attendance indexes: %w", err)
	}

	return &AttendanceRepositoryImpl{collection: collection}, nil
}

// Create implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}
	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.AttendanceRecord, error) {
	var record attendance.AttendanceRecord
	err := r.collection.FindOne(ctx, bson.M{
		"employee_id": employeeID,
		"date":        date,
	}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance record: %w", err)
	}
	return &record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if result.MatchedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetByDate implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) GetByDate(ctx context.Context, date string) ([]attendance.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"date": date})
}

// GetRange implements attendance.AttendanceRepository.
func (r *AttendanceRepositoryImpl) GetRange(ctx context.Context, employeeIDs []string, start, end string) ([]attendance.AttendanceRecord, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	if employeeIDs != nil {
		filter["employee_id"] = bson.M{"$in": employeeIDs}
	}
	return r.find(ctx, filter)
}

func (r *AttendanceRepositoryImpl) find(ctx context.Context, filter bson.M) ([]attendance.AttendanceRecord, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "employee_id", Value: 1},
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []attendance.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}
