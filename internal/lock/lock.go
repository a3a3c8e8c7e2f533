// Package lock serialises renderer runs that share an output directory.
package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// FileName is the lock file created inside the destination directory.
const FileName = ".mdbook-docx.lock"

const retryDelay = 100 * time.Millisecond

// DirLock is an advisory lock held on a destination directory.
type DirLock struct {
	flock *flock.Flock
	path  string
}

// New prepares a lock for dir. The directory is created if missing.
func New(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	return &DirLock{flock: flock.New(path), path: path}, nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.path
}

// Lock blocks until the lock is held or ctx is done.
func (l *DirLock) Lock(ctx context.Context) error {
	ok, err := l.flock.TryLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("failed to acquire lock on %s", l.path)
	}
	return nil
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false if another process holds it.
func (l *DirLock) TryLock() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock. The lock file is left in place.
func (l *DirLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
