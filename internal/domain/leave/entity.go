package leave

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/request"
)

// Type enumerates the leave categories.
type Type string

const (
	TypeAnnual    Type = "annual"
	TypePersonal  Type = "personal"
	TypeSick      Type = "sick"
	TypeMenstrual Type = "menstrual"
	TypeMarriage  Type = "marriage"
	TypeFuneral   Type = "funeral"
	TypeMaternity Type = "maternity"
	TypeOfficial  Type = "official"
)

var knownTypes = map[Type]struct{}{
	TypeAnnual:    {},
	TypePersonal:  {},
	TypeSick:      {},
	TypeMenstrual: {},
	TypeMarriage:  {},
	TypeFuneral:   {},
	TypeMaternity: {},
	TypeOfficial:  {},
}

// Known reports whether t is one of the enumerated leave categories.
func (t Type) Known() bool {
	_, ok := knownTypes[t]
	return ok
}

// LeaveRequest is a leave application. The employee name and department are
// snapshots taken at creation time. Sequence is assigned once from the shared
// counter and never changes.
type LeaveRequest struct {
	ID         string `bson:"_id"`
	Sequence   int64  `bson:"sequence"`
	EmployeeID string `bson:"employee_id"`

	EmployeeName string `bson:"employee_name"`
	Department   string `bson:"department"`

	Type   Type   `bson:"type"`
	Reason string `bson:"reason"`

	Start time.Time `bson:"start"`
	End   time.Time `bson:"end"`

	// Creation-date parts, precomputed for calendar grouping.
	CreatedYear  int `bson:"created_year"`
	CreatedMonth int `bson:"created_month"`
	CreatedDay   int `bson:"created_day"`

	DurationHours   int `bson:"duration_hours"`
	DurationMinutes int `bson:"duration_minutes"`

	Status       request.Status `bson:"status"`
	RejectReason *string        `bson:"reject_reason,omitempty"`
	ApproverID   *string        `bson:"approver_id,omitempty"`

	Attachments []string `bson:"attachments,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
