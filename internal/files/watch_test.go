package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	mgr, tmp := newTestManager(t)
	path := filepath.Join(tmp, "today.md")
	seedFile(t, path, "9:00-10:00")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- mgr.Watch(ctx, "today.md", func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Keep writing until the watcher is registered and reports a change.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for seen := false; !seen; {
		select {
		case <-changed:
			seen = true
		case <-ticker.C:
			if err := os.WriteFile(path, []byte("9:00-11:00"), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
		case <-deadline:
			t.Fatalf("no change reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch did not return after cancel")
	}
}

func TestWatchMissingFolder(t *testing.T) {
	mgr, _ := newTestManager(t)
	err := mgr.Watch(context.Background(), "missing/today.md", func() {})
	if err == nil {
		t.Fatalf("Watch expected error for missing folder")
	}
}
