package importer

import (
	"strconv"
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/pkg/validator"
)

// Raw punch-clock line layout, fixed byte offsets:
//
//	[0:3)   status code, "000" clock-in or "900" clock-out
//	[3:11)  eight-digit employee id
//	[11:17) date as YYMMDD, year 2000-based
//	[17:23) time as HHMMSS in the organization zone
//
// Trailing bytes beyond offset 23 are ignored.
const lineLength = 23

// ParseLine converts one raw log line into a clock event. It is total: any
// line that does not parse, whatever the reason, yields nil rather than an
// error. Seconds are parsed but dropped; reconciliation works at minute
// precision.
func ParseLine(line string, loc *time.Location) *clocklog.ClockEvent {
	if len(line) < lineLength {
		return nil
	}

	status := line[0:3]
	employeeID := line[3:11]
	dateStr := line[11:17]
	timeStr := line[17:23]

	var direction clocklog.Direction
	switch status {
	case clocklog.StatusCodeIn:
		direction = clocklog.DirectionIn
	case clocklog.StatusCodeOut:
		direction = clocklog.DirectionOut
	default:
		return nil
	}

	if !validator.IsValidEmployeeID(employeeID) {
		return nil
	}

	// The two-digit year is 2000-based, so the fields are assembled by hand
	// rather than through a layout string with pivot-year semantics.
	if !validator.IsNumeric(dateStr) || !validator.IsNumeric(timeStr) {
		return nil
	}
	year := 2000 + atoi(dateStr[0:2])
	month := atoi(dateStr[2:4])
	day := atoi(dateStr[4:6])
	hour := atoi(timeStr[0:2])
	minute := atoi(timeStr[2:4])
	second := atoi(timeStr[4:6])

	// time.Date normalizes out-of-range fields, so a bad month or a 25th
	// hour shows up as a round-trip mismatch.
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return nil
	}
	t = t.Truncate(time.Minute)

	return &clocklog.ClockEvent{
		EmployeeID: employeeID,
		Date:       t.Format("2006-01-02"),
		Time:       t,
		Direction:  direction,
		Status:     status,
		RawLine:    line,
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
