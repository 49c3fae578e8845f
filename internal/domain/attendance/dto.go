package attendance

import (
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

// CorrectionInput is an approved post-clock correction handed to the
// reconciler by the request layer, never by raw log parsing.
type CorrectionInput struct {
	EmployeeID string             `validate:"required"`
	Date       string             `validate:"required,datetime=2006-01-02"`
	Time       time.Time          `validate:"required"`
	Direction  clocklog.Direction `validate:"required,oneof=in out"`
	Sequence   int64              `validate:"required"`
}

func (c *CorrectionInput) Validate() error {
	return validator.Struct(c)
}

// ApplyResult reports one reconciled event. Warning carries recovered
// problems such as an employee id missing from the directory; the record is
// still written in that case.
type ApplyResult struct {
	Record  AttendanceRecord
	Created bool
	Warning string
}
