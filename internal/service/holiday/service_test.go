package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workclock/attendance-core-go/internal/domain/holiday"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays[h.ID] = h
	return h, nil
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date string) (*holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.Date == date {
			return &h, nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id string) (*holiday.Holiday, error) {
	if h, ok := f.holidays[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	delete(f.holidays, id)
	return nil
}

func (f *fakeHolidayRepo) List(context.Context) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		out = append(out, h)
	}
	return out, nil
}

func newTestService(t *testing.T) (holiday.HolidayService, *fakeHolidayRepo) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)
	repo := newFakeHolidayRepo()
	return NewHolidayService(repo, loc), repo
}

func TestCreateHoliday(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayInput{
		Name: "National Day",
		Date: "2025-10-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "National Day", created.Name)
	assert.False(t, created.Recurring())
}

func TestCreateHolidayDuplicateDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "National Day", Date: "2025-10-10"})
	require.NoError(t, err)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "Double Ten", Date: "2025-10-10"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestCreateHolidayInvalidRule(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayInput{
		Name:           "Broken",
		Date:           "2025-01-01",
		RecurrenceRule: "FREQ=NONSENSE",
	})
	assert.ErrorIs(t, err, holiday.ErrInvalidRule)
}

func TestOccurrencesInRange(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "National Day", Date: "2025-10-10"})
	require.NoError(t, err)
	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "Off-range", Date: "2025-12-25"})
	require.NoError(t, err)

	occurrences, err := svc.OccurrencesInRange(ctx, "2025-10-01", "2025-10-31")
	require.NoError(t, err)

	require.Len(t, occurrences, 1)
	assert.Equal(t, "2025-10-10", occurrences[0].Date)
	assert.Equal(t, "National Day", occurrences[0].Name)
}

func TestOccurrencesInRangeExpandsRecurring(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayInput{
		Name:           "New Year's Day",
		Date:           "2025-01-01",
		RecurrenceRule: "FREQ=YEARLY",
	})
	require.NoError(t, err)

	occurrences, err := svc.OccurrencesInRange(ctx, "2025-01-01", "2027-12-31")
	require.NoError(t, err)

	require.Len(t, occurrences, 3)
	assert.Equal(t, "2025-01-01", occurrences[0].Date)
	assert.Equal(t, "2026-01-01", occurrences[1].Date)
	assert.Equal(t, "2027-01-01", occurrences[2].Date)
}

func TestIsHoliday(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "National Day", Date: "2025-10-10"})
	require.NoError(t, err)

	got, err := svc.IsHoliday(ctx, "2025-10-10")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = svc.IsHoliday(ctx, "2025-10-11")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestDeleteHoliday(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateHoliday(ctx, holiday.CreateHolidayInput{Name: "National Day", Date: "2025-10-10"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHoliday(ctx, created.ID))
	assert.Empty(t, repo.holidays)

	err = svc.DeleteHoliday(ctx, created.ID)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}
