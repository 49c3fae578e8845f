package employee

import "context"

// EmployeeRepository is the read-only employee directory.
type EmployeeRepository interface {
	// GetByEmployeeID looks up an employee by the punch-clock identifier.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	ListActive(ctx context.Context) ([]Employee, error)
	ListActiveByDepartment(ctx context.Context, department string) ([]Employee, error)
}
