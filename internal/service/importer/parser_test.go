package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
)

func taipei(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)
	return loc
}

func TestParseLineClockIn(t *testing.T) {
	loc := taipei(t)

	event := ParseLine("00012345678250910083000", loc)
	require.NotNil(t, event)

	assert.Equal(t, "12345678", event.EmployeeID)
	assert.Equal(t, "2025-09-10", event.Date)
	assert.Equal(t, clocklog.DirectionIn, event.Direction)
	assert.Equal(t, "000", event.Status)
	assert.Equal(t, time.Date(2025, 9, 10, 8, 30, 0, 0, loc), event.Time)
}

func TestParseLineClockOut(t *testing.T) {
	loc := taipei(t)

	event := ParseLine("90012345678250910173000", loc)
	require.NotNil(t, event)

	assert.Equal(t, clocklog.DirectionOut, event.Direction)
	assert.Equal(t, "900", event.Status)
	assert.Equal(t, time.Date(2025, 9, 10, 17, 30, 0, 0, loc), event.Time)
}

func TestParseLineCenturyMapping(t *testing.T) {
	loc := taipei(t)

	cases := map[string]struct {
		line string
		want time.Time
	}{
		"low year":  {"00012345678000101000000", time.Date(2000, 1, 1, 0, 0, 0, 0, loc)},
		"mid year":  {"00012345678690910083000", time.Date(2069, 9, 10, 8, 30, 0, 0, loc)},
		"high year": {"00012345678990910083000", time.Date(2099, 9, 10, 8, 30, 0, 0, loc)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			event := ParseLine(tc.line, loc)
			require.NotNil(t, event)
			assert.Equal(t, tc.want, event.Time)
			assert.Equal(t, tc.want.Format("2006-01-02"), event.Date)
		})
	}
}

func TestParseLineDropsSeconds(t *testing.T) {
	loc := taipei(t)

	event := ParseLine("00012345678250910083059", loc)
	require.NotNil(t, event)
	assert.Equal(t, 0, event.Time.Second())
	assert.Equal(t, 30, event.Time.Minute())
}

func TestParseLineIgnoresTrailingBytes(t *testing.T) {
	loc := taipei(t)

	event := ParseLine("00012345678250910083000XYZ  extra", loc)
	require.NotNil(t, event)
	assert.Equal(t, "12345678", event.EmployeeID)
}

func TestParseLineKeepsRawLine(t *testing.T) {
	loc := taipei(t)
	line := "00012345678250910083000"

	event := ParseLine(line, loc)
	require.NotNil(t, event)
	assert.Equal(t, line, event.RawLine)
}

func TestParseLineTotalOnBadInput(t *testing.T) {
	loc := taipei(t)

	cases := map[string]string{
		"too short":          "00012345678",
		"empty":              "",
		"unknown status":     "12312345678250910083000",
		"alpha employee id":  "000abcdefgh250910083000",
		"month out of range": "00012345678251310083000",
		"day out of range":   "00012345678250932083000",
		"hour out of range":  "00012345678250910250000",
		"minute of range":    "00012345678250910086100",
		"alpha date":         "000123456782509ab083000",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, ParseLine(line, loc))
		})
	}
}
