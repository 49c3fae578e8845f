package leave

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type CreateLeaveInput struct {
	EmployeeID  string    `validate:"required"`
	Type        Type      `validate:"required"`
	Reason      string    `validate:"required"`
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required"`
	Attachments []string  `validate:"omitempty,dive,required"`

	// RoundToBlocks switches duration accounting to half-day blocks.
	RoundToBlocks bool
}

func (i *CreateLeaveInput) Validate() error {
	if err := validator.Struct(i); err != nil {
		return err
	}
	if !i.Type.Known() {
		return ErrUnknownLeaveType
	}
	return nil
}

type RejectLeaveInput struct {
	RequestID  string `validate:"required"`
	ApproverID string `validate:"required"`
	Reason     string `validate:"required"`
}

func (i *RejectLeaveInput) Validate() error {
	return validator.Struct(i)
}
