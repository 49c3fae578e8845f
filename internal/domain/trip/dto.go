package trip

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type CreateTripInput struct {
	EmployeeID  string    `validate:"required"`
	Destination string    `validate:"required"`
	Purpose     string    `validate:"required"`
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required"`
}

func (i *CreateTripInput) Validate() error {
	return validator.Struct(i)
}

type RejectTripInput struct {
	RequestID  string `validate:"required"`
	ApproverID string `validate:"required"`
	Reason     string `validate:"required"`
}

func (i *RejectTripInput) Validate() error {
	return validator.Struct(i)
}
