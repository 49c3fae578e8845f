package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByDate returns nil when no single-dated holiday exists on the date.
	// Recurring holidays are not matched here; expansion happens in the
	// service layer.
	GetByDate(ctx context.Context, date string) (*Holiday, error)

	GetByID(ctx context.Context, id string) (*Holiday, error)

	Delete(ctx context.Context, id string) error

	// List returns every stored holiday, dated and recurring.
	List(ctx context.Context) ([]Holiday, error)
}
