package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mobil-koeln/hoverscroll/internal/testutil"
)

func waitChange(t *testing.T, w *Watcher) bool {
	t.Helper()
	select {
	case <-w.Changes():
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	path := writeFile(t, "log.txt", "one\n")

	w, err := NewWatcher(path)
	testutil.AssertNil(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	testutil.AssertNil(t, os.WriteFile(path, []byte("one\ntwo\n"), 0600))
	testutil.AssertTrue(t, waitChange(t, w))
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	path := writeFile(t, "log.txt", "one\n")

	w, err := NewWatcher(path)
	testutil.AssertNil(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	sibling := filepath.Join(filepath.Dir(path), "other.txt")
	testutil.AssertNil(t, os.WriteFile(sibling, []byte("x"), 0600))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	path := writeFile(t, "log.txt", "")

	w, err := NewWatcher(path)
	testutil.AssertNil(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		testutil.AssertNil(t, os.WriteFile(path, []byte("line\n"), 0600))
	}
	testutil.AssertTrue(t, waitChange(t, w))

	select {
	case <-w.Changes():
		t.Fatal("burst produced more than one change")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	path := writeFile(t, "log.txt", "")

	w, err := NewWatcher(path)
	testutil.AssertNil(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		testutil.AssertTrue(t, err == context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	path := writeFile(t, "log.txt", "")

	w, err := NewWatcher(path)
	testutil.AssertNil(t, err)
	testutil.AssertNil(t, w.Close())
	testutil.AssertNil(t, w.Close())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "gone", "file.txt"))
	testutil.AssertError(t, err)
}
