package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
	"github.com/workclock/attendance-core-go/internal/pkg/i18n"
	"github.com/workclock/attendance-core-go/internal/pkg/timeutil"
)

// ImporterJobs owns the background work of the import daemon: the periodic
// log-folder scan and the nightly absence sweep.
type ImporterJobs struct {
	importerSvc   clocklog.ImporterService
	attendanceSvc attendance.AttendanceService

	logDir       string
	scanInterval time.Duration
	loc          *time.Location
}

func NewImporterJobs(
	importerSvc clocklog.ImporterService,
	attendanceSvc attendance.AttendanceService,
	logDir string,
	scanInterval time.Duration,
	loc *time.Location,
) *ImporterJobs {
	return &ImporterJobs{
		importerSvc:   importerSvc,
		attendanceSvc: attendanceSvc,
		logDir:        logDir,
		scanInterval:  scanInterval,
		loc:           loc,
	}
}

func (j *ImporterJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("scan_clock_logs", j.scanInterval, j.ScanClockLogs)
	scheduler.AddJob("mark_absences", 1*time.Hour, j.MarkAbsences)
}

// ScanClockLogs walks the log folder once. A scan already in progress is a
// skip, not a failure.
func (j *ImporterJobs) ScanClockLogs(ctx context.Context) error {
	result, err := j.importerSvc.ScanFolder(ctx)
	if err != nil {
		if errors.Is(err, clocklog.ErrScanInProgress) {
			slog.Info("Scan skipped", "reason", i18n.MessageForError(ctx, err), "dir", j.logDir)
			return nil
		}
		return err
	}

	slog.Info("Scan completed",
		"dir", j.logDir,
		"processed", result.Processed,
		"imported", result.Imported,
		"updated", result.Updated,
		"errors", len(result.Errors))
	for _, msg := range result.Errors {
		slog.Warn("Scan error", "error", msg)
	}
	return nil
}

// MarkAbsences runs during the first hour of the local day and sweeps the
// previous date for active employees without a record.
func (j *ImporterJobs) MarkAbsences(ctx context.Context) error {
	now := time.Now().In(j.loc)
	if now.Hour() != 0 {
		return nil
	}

	yesterday := timeutil.DateOf(now.AddDate(0, 0, -1), j.loc)
	count, err := j.attendanceSvc.MarkAbsences(ctx, yesterday)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Marked absences", "date", yesterday, "count", count)
	}
	return nil
}
