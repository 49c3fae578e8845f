package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday already exists for date")
	ErrInvalidRule     = errors.New("invalid recurrence rule")
)
