package holiday

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/workclock/attendance-core-go/internal/domain/holiday"
	"github.com/workclock/attendance-core-go/internal/pkg/timeutil"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
	loc *time.Location
}

// CreateHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) CreateHoliday(ctx context.Context, input holiday.CreateHolidayInput) (holiday.Holiday, error) {
	if err := input.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	existing, err := h.HolidayRepository.GetByDate(ctx, input.Date)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if existing != nil {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}

	if input.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(input.RecurrenceRule); err != nil {
			return holiday.Holiday{}, fmt.Errorf("%w: %v", holiday.ErrInvalidRule, err)
		}
	}

	now := time.Now().In(h.loc)
	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Date:           input.Date,
		RecurrenceRule: input.RecurrenceRule,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	existing, err := h.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get holiday: %w", err)
	}
	if existing == nil {
		return holiday.ErrHolidayNotFound
	}
	if err := h.HolidayRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// OccurrencesInRange implements holiday.HolidayService.
func (h *HolidayServiceImpl) OccurrencesInRange(ctx context.Context, start, end string) ([]holiday.Occurrence, error) {
	startDay, ok := validator.IsValidDate(start)
	if !ok {
		return nil, fmt.Errorf("invalid start date %q", start)
	}
	endDay, ok := validator.IsValidDate(end)
	if !ok {
		return nil, fmt.Errorf("invalid end date %q", end)
	}

	holidays, err := h.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	var occurrences []holiday.Occurrence
	for _, hd := range holidays {
		if !hd.Recurring() {
			if hd.Date >= start && hd.Date <= end {
				occurrences = append(occurrences, holiday.Occurrence{
					HolidayID: hd.ID,
					Name:      hd.Name,
					Date:      hd.Date,
				})
			}
			continue
		}

		ropt, err := rrule.StrToROption(hd.RecurrenceRule)
		if err != nil {
			return nil, fmt.Errorf("%w: holiday %s: %v", holiday.ErrInvalidRule, hd.ID, err)
		}
		anchor, err := time.Parse("2006-01-02", hd.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor date on holiday %s: %w", hd.ID, err)
		}
		ropt.Dtstart = anchor

		rule, err := rrule.NewRRule(*ropt)
		if err != nil {
			return nil, fmt.Errorf("%w: holiday %s: %v", holiday.ErrInvalidRule, hd.ID, err)
		}

		for _, occ := range rule.Between(startDay, endDay.Add(24*time.Hour-time.Second), true) {
			occurrences = append(occurrences, holiday.Occurrence{
				HolidayID: hd.ID,
				Name:      hd.Name,
				Date:      timeutil.DateOf(occ, time.UTC),
			})
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].Date < occurrences[j].Date
	})
	return occurrences, nil
}

// IsHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) IsHoliday(ctx context.Context, date string) (bool, error) {
	occurrences, err := h.OccurrencesInRange(ctx, date, date)
	if err != nil {
		return false, err
	}
	return len(occurrences) > 0, nil
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, loc *time.Location) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepo,
		loc:               loc,
	}
}
