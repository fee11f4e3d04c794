package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestNewFileWatcher(t *testing.T) {
	config := DefaultFileWatcherConfig()
	config.Paths = []string{t.TempDir()}

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v, want nil", err)
	}
	if watcher == nil {
		t.Fatal("NewFileWatcher() returned nil")
	}
	if watcher.watcher == nil {
		t.Error("watcher.watcher is nil")
	}
	if watcher.debounce == nil {
		t.Error("watcher.debounce is nil")
	}

	_ = watcher.Stop()
}

func TestDefaultFileWatcherConfig(t *testing.T) {
	config := DefaultFileWatcherConfig()

	if config.DebounceInterval != 100*time.Millisecond {
		t.Errorf("config.DebounceInterval = %v, want 100ms", config.DebounceInterval)
	}
	if len(config.Extensions) != 3 {
		t.Errorf("config.Extensions count = %d, want 3", len(config.Extensions))
	}
	if !config.SkipHidden {
		t.Error("config.SkipHidden = false, want true")
	}
}

func TestFileWatcher_Watch_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "settings.yaml")

	content := `
_order:
  - general_parms
general_parms: {}
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultFileWatcherConfig()
	config.Paths = []string{tmpFile}
	config.DebounceInterval = 50 * time.Millisecond

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	var changeCount atomic.Int32
	changed := make(chan string, 10)

	onChange := func(path string) error {
		changeCount.Add(1)
		select {
		case changed <- path:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, onChange)
	}()

	// Wait for watcher to start
	time.Sleep(100 * time.Millisecond)

	newContent := `
_order:
  - general_parms
  - tracers
general_parms: {}
tracers: {}
`
	if err := os.WriteFile(tmpFile, []byte(newContent), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		if path != tmpFile {
			t.Errorf("onChange path = %q, want %q", path, tmpFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onChange was not called after file modification")
	}

	if changeCount.Load() == 0 {
		t.Error("expected at least one change callback")
	}
}

func TestFileWatcher_Watch_AlreadyRunning(t *testing.T) {
	config := DefaultFileWatcherConfig()
	config.Paths = []string{t.TempDir()}

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, func(string) error { return nil })
	}()

	time.Sleep(50 * time.Millisecond)

	if err := watcher.Watch(ctx, func(string) error { return nil }); err == nil {
		t.Error("expected error when starting an already running watcher")
	}
}

func TestFileWatcher_ShouldProcessEvent(t *testing.T) {
	config := DefaultFileWatcherConfig()
	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.watcher.Close() }()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "yaml write",
			event: fsnotify.Event{Name: "settings.yaml", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "json write",
			event: fsnotify.Event{Name: "diags.json", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "chmod ignored",
			event: fsnotify.Event{Name: "settings.yaml", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "unrelated extension",
			event: fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "hidden file",
			event: fsnotify.Event{Name: ".settings.yaml", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "uppercase extension",
			event: fsnotify.Event{Name: "settings.YAML", Op: fsnotify.Write},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := watcher.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestFileWatcher_StopConcurrent(t *testing.T) {
	config := DefaultFileWatcherConfig()
	config.Paths = []string{t.TempDir()}

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = watcher.Watch(ctx, func(string) error { return nil })
	}()

	time.Sleep(50 * time.Millisecond)

	// Concurrent Stop calls must not panic on a double close.
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = watcher.Stop()
		}()
	}
	wg.Wait()
}

func TestFileWatcher_StopAfterContextCancel(t *testing.T) {
	config := DefaultFileWatcherConfig()
	config.Paths = []string{t.TempDir()}

	watcher, err := NewFileWatcher(config, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	watchDone := make(chan struct{})

	go func() {
		_ = watcher.Watch(ctx, func(string) error { return nil })
		close(watchDone)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-watchDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after context cancellation")
	}

	// Stop after Watch has already exited still closes the fsnotify
	// handle, and calling it again stays a no-op.
	if err := watcher.Stop(); err != nil {
		t.Errorf("Stop() error = %v, want nil", err)
	}
	if err := watcher.Stop(); err != nil {
		t.Errorf("second Stop() error = %v, want nil", err)
	}
}

func TestFileWatcher_StopBeforeWatch(t *testing.T) {
	watcher, err := NewFileWatcher(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Stop on a watcher that never started is a no-op.
	if err := watcher.Stop(); err != nil {
		t.Errorf("Stop() error = %v, want nil", err)
	}
}
