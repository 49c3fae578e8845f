package postclock

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type CreatePostClockInput struct {
	EmployeeID string             `validate:"required"`
	Date       string             `validate:"required,datetime=2006-01-02"`
	ClockTime  time.Time          `validate:"required"`
	Direction  clocklog.Direction `validate:"required,oneof=in out"`
	Reason     string             `validate:"required"`
}

func (i *CreatePostClockInput) Validate() error {
	return validator.Struct(i)
}

type RejectPostClockInput struct {
	RequestID  string `validate:"required"`
	ApproverID string `validate:"required"`
	Reason     string `validate:"required"`
}

func (i *RejectPostClockInput) Validate() error {
	return validator.Struct(i)
}
