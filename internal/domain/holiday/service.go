package holiday

import "context"

type HolidayService interface {
	// CreateHoliday rejects a dated holiday whose date is already taken
	// with ErrHolidayExists.
	CreateHoliday(ctx context.Context, input CreateHolidayInput) (Holiday, error)

	DeleteHoliday(ctx context.Context, id string) error

	// OccurrencesInRange expands every stored holiday over [start, end]
	// (YYYY-MM-DD, inclusive) and returns the concrete dates sorted by date.
	OccurrencesInRange(ctx context.Context, start, end string) ([]Occurrence, error)

	// IsHoliday reports whether the date falls on any holiday occurrence.
	IsHoliday(ctx context.Context, date string) (bool, error)
}
