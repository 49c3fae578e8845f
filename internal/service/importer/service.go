package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workclock/attendance-core-go/internal/domain/attendance"
	"github.com/workclock/attendance-core-go/internal/domain/clocklog"
)

type ImporterServiceImpl struct {
	attendanceSvc  attendance.AttendanceService
	importFileRepo clocklog.ImportFileRepository
	logDir         string
	loc            *time.Location

	scanGuard scanGuard
}

// ImportLogFile implements clocklog.ImporterService. Bad lines never abort
// the file; they are collected in the result's error list. Only storage
// failures surface as errors.
func (s *ImporterServiceImpl) ImportLogFile(ctx context.Context, path string) (clocklog.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return clocklog.ImportResult{}, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	var result clocklog.ImportResult

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		event := ParseLine(line, s.loc)
		if event == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: unparseable line %q", path, lineNo, line))
			continue
		}

		applied, err := s.attendanceSvc.ApplyClockEvent(ctx, *event)
		if err != nil {
			return result, fmt.Errorf("failed to apply clock event at %s:%d: %w", path, lineNo, err)
		}
		if applied.Warning != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s:%d: %s", path, lineNo, applied.Warning))
		}
		result.Imported++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read log file: %w", err)
	}

	return result, nil
}

// ScanFolder implements clocklog.ImporterService. At most one scan runs at a
// time; a second caller gets ErrScanInProgress instead of queueing.
func (s *ImporterServiceImpl) ScanFolder(ctx context.Context) (clocklog.ScanResult, error) {
	if !s.scanGuard.TryAcquire() {
		return clocklog.ScanResult{}, clocklog.ErrScanInProgress
	}
	defer s.scanGuard.Release()

	entries, err := os.ReadDir(s.logDir)
	if err != nil {
		return clocklog.ScanResult{}, fmt.Errorf("failed to read log dir: %w", err)
	}

	var result clocklog.ScanResult
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		result.Processed++

		path := filepath.Join(s.logDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: stat failed: %v", path, err))
			continue
		}

		ledger, err := s.importFileRepo.GetByPath(ctx, path)
		if err != nil {
			return result, fmt.Errorf("failed to read import ledger: %w", err)
		}
		if ledger != nil && ledger.Size == info.Size() && ledger.ModTime.Equal(info.ModTime()) {
			continue
		}

		fileResult, err := s.ImportLogFile(ctx, path)
		result.Imported += fileResult.Imported
		result.Errors = append(result.Errors, fileResult.Errors...)
		if err != nil {
			// Keep going; already-written records from this file stand.
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Updated++

		record := clocklog.ImportFile{
			ID:         uuid.NewString(),
			Path:       path,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			ImportedAt: time.Now().In(s.loc),
		}
		if ledger != nil {
			record.ID = ledger.ID
		}
		if err := s.importFileRepo.Upsert(ctx, record); err != nil {
			return result, fmt.Errorf("failed to update import ledger: %w", err)
		}
	}

	return result, nil
}

func NewImporterService(
	attendanceSvc attendance.AttendanceService,
	importFileRepo clocklog.ImportFileRepository,
	logDir string,
	loc *time.Location,
) clocklog.ImporterService {
	return &ImporterServiceImpl{
		attendanceSvc:  attendanceSvc,
		importFileRepo: importFileRepo,
		logDir:         logDir,
		loc:            loc,
	}
}
