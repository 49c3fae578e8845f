package attendance

import (
	"time"
)

// Clock status codes stored on a record side. Raw punches keep the device
// status code; approved post-clock corrections are tagged manual.
const (
	ClockStatusIn     = "000"
	ClockStatusOut    = "900"
	ClockStatusManual = "manual"
)

// AttendanceRecord is the daily attendance aggregate, at most one per
// (employee, date). It is created on the first parsed event or first
// correction for that date and mutated by later ones; it is never deleted.
type AttendanceRecord struct {
	ID         string  `bson:"_id"`
	EmployeeID string  `bson:"employee_id"`
	LegacyID   *string `bson:"legacy_id,omitempty"`

	// Snapshot of the directory entry at write time, not a live join.
	EmployeeName string `bson:"employee_name"`
	Department   string `bson:"department"`

	Date string `bson:"date"` // YYYY-MM-DD

	ClockIn        *time.Time `bson:"clock_in,omitempty"`
	ClockInStatus  string     `bson:"clock_in_status,omitempty"`
	ClockOut       *time.Time `bson:"clock_out,omitempty"`
	ClockOutStatus string     `bson:"clock_out_status,omitempty"`

	// RawLines keeps the source log lines for debugging.
	RawLines []string `bson:"raw_lines,omitempty"`

	WorkedMinutes int  `bson:"worked_minutes"`
	IsLate        bool `bson:"is_late"`
	IsEarlyLeave  bool `bson:"is_early_leave"`
	IsAbsent      bool `bson:"is_absent"`

	// Corrections lists the sequence numbers of post-clock corrections
	// applied to this record. Appends are idempotent.
	Corrections []int64 `bson:"corrections,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// HasCorrection reports whether a correction sequence number was already applied.
func (r *AttendanceRecord) HasCorrection(sequence int64) bool {
	for _, s := range r.Corrections {
		if s == sequence {
			return true
		}
	}
	return false
}
