package clocklog

import "context"

// ImporterService reads punch-clock log files and feeds the attendance
// reconciler.
type ImporterService interface {
	// ImportLogFile imports a single log file. Line-level problems are
	// collected in the result; only infrastructure failures return an error.
	ImportLogFile(ctx context.Context, path string) (ImportResult, error)

	// ScanFolder walks the configured log folder and (re)imports files whose
	// size or mtime changed. At most one scan runs at a time; a scan
	// triggered while another is running returns ErrScanInProgress.
	ScanFolder(ctx context.Context) (ScanResult, error)
}
