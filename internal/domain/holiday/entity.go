package holiday

import "time"

// Holiday is a single dated holiday, or a recurring one when RecurrenceRule
// is set. For recurring holidays Date anchors the rule's first occurrence;
// expansion into concrete dates happens at query time.
type Holiday struct {
	ID             string `bson:"_id"`
	Name           string `bson:"name"`
	Date           string `bson:"date"`                      // YYYY-MM-DD
	RecurrenceRule string `bson:"recurrence_rule,omitempty"` // RFC 5545 RRULE

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Recurring reports whether the holiday is rule-based.
func (h *Holiday) Recurring() bool {
	return h.RecurrenceRule != ""
}

// Occurrence is one concrete holiday date produced by expanding the stored
// holidays over a query range.
type Occurrence struct {
	HolidayID string `json:"holidayId"`
	Name      string `json:"name"`
	Date      string `json:"date"` // YYYY-MM-DD
}
