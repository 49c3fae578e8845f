package importer

import "sync"

// scanGuard enforces the at-most-one-concurrent-scan policy. A scan that
// finds the guard held skips instead of queueing, so two ticker fires can
// never reconcile the same (employee, date) record concurrently.
type scanGuard struct {
	mu sync.Mutex
}

func (g *scanGuard) TryAcquire() bool {
	return g.mu.TryLock()
}

func (g *scanGuard) Release() {
	g.mu.Unlock()
}
