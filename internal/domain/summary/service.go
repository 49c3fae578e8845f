package summary

import (
	"context"

	"github.com/workclock/attendance-core-go/internal/domain/user"
)

// SummaryService is the read-only aggregation facade. It performs no writes.
type SummaryService interface {
	// Aggregate resolves the requesting user's permission scope, then
	// fetches attendance, approved leave, approved business trips, approved
	// post-clock corrections, and holiday occurrences intersecting
	// [start, end] (YYYY-MM-DD, inclusive) for the allowed employees.
	Aggregate(ctx context.Context, requester user.User, start, end string) (Result, error)
}
