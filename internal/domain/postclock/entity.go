package postclock

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/domain/request"
)

// PostClockRequest is a manual correction to a punch an employee missed or
// mis-recorded. Approval is the one request path with a side effect on a
// different aggregate: it mutates the matching attendance record.
type PostClockRequest struct {
	ID         string `bson:"_id"`
	Sequence   int64  `bson:"sequence"`
	EmployeeID string `bson:"employee_id"`

	EmployeeName string `bson:"employee_name"`
	Department   string `bson:"department"`

	Date      string             `bson:"date"` // YYYY-MM-DD
	ClockTime time.Time          `bson:"clock_time"`
	Direction clocklog.Direction `bson:"direction"`
	Reason    string             `bson:"reason"`

	Status       request.Status `bson:"status"`
	RejectReason *string        `bson:"reject_reason,omitempty"`
	ApproverID   *string        `bson:"approver_id,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
