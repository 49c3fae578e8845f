package clocklog

import "context"

// ImportFileRepository persists the per-file import ledger.
type ImportFileRepository interface {
	// GetByPath returns the ledger entry for a path, or nil if the file has
	// never been imported.
	GetByPath(ctx context.Context, path string) (*ImportFile, error)
	Upsert(ctx context.Context, file ImportFile) error
}
