package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// Workday policy constants. These mirror the organization's fixed working
// hours: 08:30-17:30 with a 12:00-13:00 lunch break and a flex window that
// tolerates clock-outs up to 18:30.
const (
	WorkdayStartHour   = 8
	WorkdayStartMinute = 30
	WorkdayEndHour     = 17
	WorkdayEndMinute   = 30
	FlexEndHour        = 18
	FlexEndMinute      = 30
	LunchStartHour     = 12
	LunchStartMinute   = 0
	LunchEndHour       = 13
	LunchEndMinute     = 0

	// HalfDayBlockMinutes is the rounding unit for leave-duration accounting.
	HalfDayBlockMinutes = 240
)

// Parts is the local-zone calendar decomposition of an instant.
type Parts struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Decompose breaks an instant into calendar fields in the given zone.
func Decompose(t time.Time, loc *time.Location) Parts {
	lt := t.In(loc)
	return Parts{
		Year:   lt.Year(),
		Month:  int(lt.Month()),
		Day:    lt.Day(),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
		Second: lt.Second(),
	}
}

// YY returns the two-digit year ("25" for 2025), used in record numbering.
func (p Parts) YY() string {
	return fmt.Sprintf("%02d", p.Year%100)
}

// YYYY returns the four-digit year.
func (p Parts) YYYY() string {
	return strconv.Itoa(p.Year)
}

// MM returns the zero-padded month.
func (p Parts) MM() string {
	return fmt.Sprintf("%02d", p.Month)
}

// DD returns the zero-padded day.
func (p Parts) DD() string {
	return fmt.Sprintf("%02d", p.Day)
}

// HH returns the zero-padded hour.
func (p Parts) HH() string {
	return fmt.Sprintf("%02d", p.Hour)
}

// Mi returns the zero-padded minute.
func (p Parts) Mi() string {
	return fmt.Sprintf("%02d", p.Minute)
}

// SS returns the zero-padded second.
func (p Parts) SS() string {
	return fmt.Sprintf("%02d", p.Second)
}

// MonthDisplay returns the month without zero padding, for display.
func (p Parts) MonthDisplay() string {
	return strconv.Itoa(p.Month)
}

// DayDisplay returns the day without zero padding, for display.
func (p Parts) DayDisplay() string {
	return strconv.Itoa(p.Day)
}

// DateString returns the YYYY-MM-DD calendar date.
func (p Parts) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

// Compact returns the YYYYMMDD form used in file names and numbering.
func (p Parts) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", p.Year, p.Month, p.Day)
}

// DateOf returns the YYYY-MM-DD calendar date of an instant in the given zone.
func DateOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// IsWeekend reports whether the instant falls on Saturday or Sunday in the
// given zone.
func IsWeekend(t time.Time, loc *time.Location) bool {
	wd := t.In(loc).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func at(t time.Time, loc *time.Location, hour, minute int) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), hour, minute, 0, 0, loc)
}

// WorkdayStartOn returns the scheduled start-of-day on the instant's calendar date.
func WorkdayStartOn(t time.Time, loc *time.Location) time.Time {
	return at(t, loc, WorkdayStartHour, WorkdayStartMinute)
}

// WorkdayEndOn returns the scheduled end-of-day on the instant's calendar date.
func WorkdayEndOn(t time.Time, loc *time.Location) time.Time {
	return at(t, loc, WorkdayEndHour, WorkdayEndMinute)
}

// FlexEndOn returns the latest tolerated end-of-day on the instant's calendar date.
func FlexEndOn(t time.Time, loc *time.Location) time.Time {
	return at(t, loc, FlexEndHour, FlexEndMinute)
}

// LunchStartOn returns the start of the lunch break on the instant's calendar date.
func LunchStartOn(t time.Time, loc *time.Location) time.Time {
	return at(t, loc, LunchStartHour, LunchStartMinute)
}

// LunchEndOn returns the end of the lunch break on the instant's calendar date.
func LunchEndOn(t time.Time, loc *time.Location) time.Time {
	return at(t, loc, LunchEndHour, LunchEndMinute)
}

// MinutesBetween returns whole minutes from start to end. An end that reads
// earlier than the start is treated as a cross-midnight interval.
func MinutesBetween(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d += 24 * time.Hour
	}
	return int(d.Minutes())
}

// WorkingMinutes returns the counted working duration between two instants,
// excluding any overlap with the lunch break on each calendar day the
// interval spans.
func WorkingMinutes(start, end time.Time, loc *time.Location) int {
	if !end.After(start) {
		return 0
	}

	total := int(end.Sub(start).Minutes())

	// Walk each calendar day the interval touches and subtract the lunch overlap.
	day := at(start, loc, 0, 0)
	for !day.After(end) {
		lunchStart := at(day, loc, LunchStartHour, LunchStartMinute)
		lunchEnd := at(day, loc, LunchEndHour, LunchEndMinute)
		total -= overlapMinutes(start, end, lunchStart, lunchEnd)
		day = day.AddDate(0, 0, 1)
	}

	return total
}

func overlapMinutes(aStart, aEnd, bStart, bEnd time.Time) int {
	s := aStart
	if bStart.After(s) {
		s = bStart
	}
	e := aEnd
	if bEnd.Before(e) {
		e = bEnd
	}
	if !e.After(s) {
		return 0
	}
	return int(e.Sub(s).Minutes())
}

// HoursMinutes splits a minute total into an hour+minute display pair.
func HoursMinutes(totalMinutes int) (hours, minutes int) {
	return totalMinutes / 60, totalMinutes % 60
}

// RoundToHalfDayBlocks rounds a minute total to the nearest 4-hour block,
// never rounding a positive duration down to zero. Used for leave-duration
// accounting only, never for raw attendance.
func RoundToHalfDayBlocks(totalMinutes int) int {
	if totalMinutes <= 0 {
		return 0
	}
	blocks := (totalMinutes + HalfDayBlockMinutes/2) / HalfDayBlockMinutes
	if blocks == 0 {
		blocks = 1
	}
	return blocks * HalfDayBlockMinutes
}
