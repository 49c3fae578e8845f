package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taipei(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)
	return loc
}

func TestDecompose_Padding(t *testing.T) {
	loc := taipei(t)
	instant := time.Date(2025, 9, 5, 8, 3, 7, 0, loc)

	p := Decompose(instant, loc)

	assert.Equal(t, "25", p.YY())
	assert.Equal(t, "2025", p.YYYY())
	assert.Equal(t, "09", p.MM())
	assert.Equal(t, "05", p.DD())
	assert.Equal(t, "08", p.HH())
	assert.Equal(t, "03", p.Mi())
	assert.Equal(t, "07", p.SS())
	assert.Equal(t, "9", p.MonthDisplay())
	assert.Equal(t, "5", p.DayDisplay())
	assert.Equal(t, "2025-09-05", p.DateString())
	assert.Equal(t, "20250905", p.Compact())
}

func TestDecompose_ConvertsZone(t *testing.T) {
	loc := taipei(t)
	// 23:30 UTC is 07:30 the next day in Taipei.
	utcInstant := time.Date(2025, 9, 5, 23, 30, 0, 0, time.UTC)

	p := Decompose(utcInstant, loc)

	assert.Equal(t, 6, p.Day)
	assert.Equal(t, 7, p.Hour)
	assert.Equal(t, "2025-09-06", p.DateString())
}

func TestIsWeekend(t *testing.T) {
	loc := taipei(t)

	saturday := time.Date(2025, 10, 4, 12, 0, 0, 0, loc)
	sunday := time.Date(2025, 10, 5, 12, 0, 0, 0, loc)
	monday := time.Date(2025, 10, 6, 12, 0, 0, 0, loc)

	assert.True(t, IsWeekend(saturday, loc))
	assert.True(t, IsWeekend(sunday, loc))
	assert.False(t, IsWeekend(monday, loc))
}

func TestMinutesBetween(t *testing.T) {
	loc := taipei(t)
	in := time.Date(2025, 10, 1, 8, 30, 0, 0, loc)
	out := time.Date(2025, 10, 1, 17, 30, 0, 0, loc)

	assert.Equal(t, 540, MinutesBetween(in, out))
}

func TestMinutesBetween_CrossMidnight(t *testing.T) {
	loc := taipei(t)
	// A night shift punch pair recorded on the same calendar date.
	in := time.Date(2025, 10, 1, 22, 0, 0, 0, loc)
	out := time.Date(2025, 10, 1, 6, 0, 0, 0, loc)

	assert.Equal(t, 480, MinutesBetween(in, out))
}

func TestWorkingMinutes_ExcludesLunch(t *testing.T) {
	loc := taipei(t)
	start := time.Date(2025, 10, 1, 9, 0, 0, 0, loc)
	end := time.Date(2025, 10, 1, 13, 0, 0, 0, loc)

	// 09:00-13:00 is four hours on the clock, but 12:00-13:00 is lunch.
	assert.Equal(t, 180, WorkingMinutes(start, end, loc))
}

func TestWorkingMinutes_OutsideLunchUnaffected(t *testing.T) {
	loc := taipei(t)
	start := time.Date(2025, 10, 1, 13, 0, 0, 0, loc)
	end := time.Date(2025, 10, 1, 17, 30, 0, 0, loc)

	assert.Equal(t, 270, WorkingMinutes(start, end, loc))
}

func TestWorkingMinutes_MultiDay(t *testing.T) {
	loc := taipei(t)
	start := time.Date(2025, 10, 1, 8, 30, 0, 0, loc)
	end := time.Date(2025, 10, 2, 17, 30, 0, 0, loc)

	// Two lunch breaks fall inside the interval.
	raw := int(end.Sub(start).Minutes())
	assert.Equal(t, raw-120, WorkingMinutes(start, end, loc))
}

func TestWorkingMinutes_InvalidInterval(t *testing.T) {
	loc := taipei(t)
	start := time.Date(2025, 10, 1, 17, 0, 0, 0, loc)
	end := time.Date(2025, 10, 1, 9, 0, 0, 0, loc)

	assert.Equal(t, 0, WorkingMinutes(start, end, loc))
}

func TestDurationRecombines(t *testing.T) {
	loc := taipei(t)
	start := time.Date(2025, 10, 1, 8, 30, 0, 0, loc)
	end := time.Date(2025, 10, 1, 17, 17, 0, 0, loc)

	total := WorkingMinutes(start, end, loc)
	require.Greater(t, total, 0)

	hours, minutes := HoursMinutes(total)
	assert.Equal(t, total, hours*60+minutes)
	assert.Less(t, minutes, 60)
}

func TestRoundToHalfDayBlocks(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{"zero stays zero", 0, 0},
		{"short leave keeps one block", 90, 240},
		{"three hours rounds up", 180, 240},
		{"exact block unchanged", 240, 240},
		{"just over a block rounds down", 300, 240},
		{"six hours rounds up to two blocks", 360, 480},
		{"full day", 480, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundToHalfDayBlocks(tt.minutes))
		})
	}
}

func TestWorkdayBoundaries(t *testing.T) {
	loc := taipei(t)
	noonish := time.Date(2025, 10, 1, 12, 34, 0, 0, loc)

	assert.Equal(t, "08:30", WorkdayStartOn(noonish, loc).Format("15:04"))
	assert.Equal(t, "17:30", WorkdayEndOn(noonish, loc).Format("15:04"))
	assert.Equal(t, "18:30", FlexEndOn(noonish, loc).Format("15:04"))
	assert.Equal(t, "12:00", LunchStartOn(noonish, loc).Format("15:04"))
	assert.Equal(t, "13:00", LunchEndOn(noonish, loc).Format("15:04"))
}
