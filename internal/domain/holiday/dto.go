package holiday

import "github.com/workclock/attendance-core-go/internal/pkg/validator"

// CreateHolidayInput describes a new holiday. Date is the holiday itself, or
// the first occurrence when RecurrenceRule is set.
type CreateHolidayInput struct {
	Name           string `validate:"required"`
	Date           string `validate:"required,datetime=2006-01-02"`
	RecurrenceRule string `validate:"omitempty"`
}

func (i *CreateHolidayInput) Validate() error {
	return validator.Struct(i)
}
