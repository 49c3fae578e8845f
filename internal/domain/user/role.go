package user

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// User is the requesting identity as the aggregation facade sees it.
type User struct {
	EmployeeID string
	Department string
	Role       Role
}

// CanViewAll reports whether the role sees every active employee.
func (r Role) CanViewAll() bool {
	return r == RoleAdmin || r == RoleHR
}
