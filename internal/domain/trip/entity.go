package trip

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/request"
)

// TripRequest is a business-trip application sharing the request lifecycle
// of leave and post-clock. Trips do not interact with leave overlap checks.
type TripRequest struct {
	ID         string `bson:"_id"`
	Sequence   int64  `bson:"sequence"`
	EmployeeID string `bson:"employee_id"`

	EmployeeName string `bson:"employee_name"`
	Department   string `bson:"department"`

	Destination string    `bson:"destination"`
	Purpose     string    `bson:"purpose"`
	Start       time.Time `bson:"start"`
	End         time.Time `bson:"end"`

	Status       request.Status `bson:"status"`
	RejectReason *string        `bson:"reject_reason,omitempty"`
	ApproverID   *string        `bson:"approver_id,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
