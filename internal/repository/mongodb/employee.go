package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workclock/attendance-core-go/internal/domain/employee"
	"github.com/workclock/attendance-core-go/internal/pkg/database"
)

type EmployeeRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(ctx context.Context, db *database.DB) (employee.EmployeeRepository, error) {
	collection := db.Collection("employees")

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "department", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("failed to create employee indexes: %w", err)
	}

	return &EmployeeRepositoryImpl{collection: collection}, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var emp employee.Employee
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return r.find(ctx, bson.M{"active": true})
}

// ListActiveByDepartment implements employee.EmployeeRepository.
func (r *EmployeeRepositoryImpl) ListActiveByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return r.find(ctx, bson.M{"active": true, "department": department})
}

func (r *EmployeeRepositoryImpl) find(ctx context.Context, filter bson.M) ([]employee.Employee, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []employee.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}
