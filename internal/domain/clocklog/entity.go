package clocklog

import "time"

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Device status codes as they appear in the raw log feed.
const (
	StatusCodeIn  = "000"
	StatusCodeOut = "900"
)

// ClockEvent is one accepted punch parsed from a raw log line. Events are
// never persisted on their own; the attendance reconciler folds each one
// into the record for its (employee, date) key.
type ClockEvent struct {
	EmployeeID string
	Date       string // YYYY-MM-DD in the organization zone
	Time       time.Time
	Direction  Direction
	Status     string // raw device status code, "000" or "900"
	RawLine    string
}

// ImportFile tracks a processed log file by size and modification time so a
// folder re-scan can skip files that have not changed.
type ImportFile struct {
	ID         string    `bson:"_id"`
	Path       string    `bson:"path"`
	Size       int64     `bson:"size"`
	ModTime    time.Time `bson:"mod_time"`
	ImportedAt time.Time `bson:"imported_at"`
}

// ImportResult reports one file import. Errors holds recovered per-line
// problems (unknown employees and the like); they never abort the batch.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ScanResult reports one pass over the log folder.
type ScanResult struct {
	Processed int      `json:"processed"` // files examined
	Imported  int      `json:"imported"`  // events applied across changed files
	Updated   int      `json:"updated"`   // files (re)imported
	Errors    []string `json:"errors"`
}
