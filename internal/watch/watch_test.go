package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func waitForCall(t *testing.T, calls <-chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for regenerate")
	}
}

func TestRunRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "projects.yaml")
	writeSource(t, source, "projects: []\n")

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, source, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()

	// Initial generation runs before the first edit, and only after the
	// watch is in place
	waitForCall(t, calls)

	writeSource(t, source, "projects: []\n# edited\n")
	waitForCall(t, calls)

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRunKeepsWatchingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "projects.yaml")
	writeSource(t, source, "projects:\n  - title: No Id\n")

	var attempts atomic.Int32
	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, source, func(context.Context) error {
			if attempts.Add(1) == 1 {
				return errors.New("record is missing required field \"id\"")
			}
			calls <- struct{}{}
			return nil
		})
	}()

	// The failing initial regenerate marks the watch as established
	deadline := time.Now().Add(3 * time.Second)
	for attempts.Load() < 1 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for initial regenerate")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// A later change must still trigger a regenerate
	writeSource(t, source, "projects: []\n")
	waitForCall(t, calls)

	cancel()
	<-done
}

func TestRunIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "projects.yaml")
	writeSource(t, source, "projects: []\n")

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, source, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()

	waitForCall(t, calls)

	writeSource(t, filepath.Join(dir, "README.md"), "# not the source\n")

	select {
	case <-calls:
		t.Error("Regenerate ran for an unrelated file")
	case <-time.After(600 * time.Millisecond):
	}

	cancel()
	<-done
}
