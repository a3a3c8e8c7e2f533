package lock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirLock_LockUnlock(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "book", "docx")
	l, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if l.Path() != filepath.Join(dir, FileName) {
		t.Errorf("Path() = %q", l.Path())
	}

	if err := l.Lock(context.Background()); err != nil {
		t.Fatalf("Lock() error: %v", err)
	}
	if _, err := os.Stat(l.Path()); err != nil {
		t.Errorf("lock file missing: %v", err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}
}

func TestDirLock_Contended(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	second, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := first.Lock(context.Background()); err != nil {
		t.Fatalf("Lock() error: %v", err)
	}
	defer first.Unlock()

	ok, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock() error: %v", err)
	}
	if ok {
		t.Fatal("TryLock() acquired a held lock")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	if err := second.Lock(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Lock() error = %v, want deadline exceeded", err)
	}
}
