package clocklog

import "errors"

var (
	// ErrScanInProgress means a newly-triggered scan found another scan
	// still running and skipped instead of queueing.
	ErrScanInProgress = errors.New("a log folder scan is already in progress")
)
