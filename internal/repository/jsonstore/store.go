// Package jsonstore persists the ledger as one JSON file per collection,
// preserving the one-blob-per-key layout of the storage this backend
// replaces. It is the dev-mode and test backing; PostgreSQL is the
// production one.
//
// A single mutex serializes every operation. That matches the strictly
// sequential semantics of the original store and keeps cross-collection
// reads (dashboard aggregation, payroll calculation) consistent without a
// transaction protocol.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection keys double as file names (plus .json). The names are kept
// byte-for-byte from the storage layout this package ports, so existing
// data dumps load unchanged.
const (
	keyUsers             = "mockUsers"
	keyAttendance        = "mockAttendanceData"
	keyLeaveRequests     = "mockLeaveRequests"
	keyPayroll           = "mockPayrollData"
	keyOvertime          = "mockOvertimeData"
	keyRegistrationCodes = "mockRegistrationCodes"
)

// Store is the shared handle the per-collection repositories hang off.
type Store struct {
	dir  string
	mu   sync.Mutex
	next map[string]int64
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir, next: make(map[string]int64)}, nil
}

// WithinTransaction satisfies the domain transactor interfaces. The store
// has no transaction log; each repository call fn makes is serialized by
// the store mutex (which fn must not hold), so callers order their
// single-shot claim first rather than lean on rollback.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// readCollection loads a collection file into out (a pointer to a slice).
// A missing file is an empty collection.
func readCollection(s *Store, key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// writeCollection serializes a collection and replaces its file. Marshal
// output is deterministic (struct field order, two-space indent, trailing
// newline), so an unchanged collection round-trips byte for byte.
func writeCollection(s *Store, key string, items any) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	data = append(data, '\n')

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// allocID allocates the next identifier for a collection: one past the
// highest id on disk, never below the process-local high-water mark. The
// mark keeps ids monotonic even when the highest record was just deleted.
// Callers must hold s.mu.
func (s *Store) allocID(key string, ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	n := max + 1
	if cur := s.next[key]; cur > n {
		n = cur
	}
	s.next[key] = n + 1
	return n
}
