package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name        string
		schedule    string
		wantRunning bool
		wantError   bool
	}{
		{
			name:        "valid daily schedule",
			schedule:    "0 3 * * *",
			wantRunning: true,
			wantError:   false,
		},
		{
			name:        "valid every-minute schedule",
			schedule:    "* * * * *",
			wantRunning: true,
			wantError:   false,
		},
		{
			name:        "empty schedule - no error, not running",
			schedule:    "",
			wantRunning: false,
			wantError:   false,
		},
		{
			name:        "invalid schedule",
			schedule:    "invalid cron",
			wantRunning: false,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := NewScheduler(tt.schedule, nil)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			err := scheduler.Start(ctx, func(context.Context) {})

			if (err != nil) != tt.wantError {
				t.Errorf("Start() error = %v, wantError %v", err, tt.wantError)
			}

			if scheduler.IsRunning() != tt.wantRunning {
				t.Errorf("IsRunning() = %v, want %v",
					scheduler.IsRunning(), tt.wantRunning)
			}

			scheduler.Stop()
		})
	}
}

func TestScheduler_StopAfterContextCancel(t *testing.T) {
	scheduler := NewScheduler("0 3 * * *", nil)

	ctx, cancel := context.WithCancel(context.Background())

	if err := scheduler.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	cancel()

	// The scheduler stops itself when the context is cancelled.
	deadline := time.Now().Add(2 * time.Second)
	for scheduler.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if scheduler.IsRunning() {
		t.Error("scheduler still running after context cancellation")
	}
}

func TestScheduler_StopIdempotent(t *testing.T) {
	scheduler := NewScheduler("", nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := scheduler.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	scheduler.Stop()
	scheduler.Stop()
}

func TestDebouncer_CollapsesRapidTriggers(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)
	defer debouncer.Stop()

	var calls atomic.Int32
	done := make(chan struct{}, 1)

	for i := 0; i < 5; i++ {
		debouncer.Trigger(func() {
			calls.Add(1)
			select {
			case done <- struct{}{}:
			default:
			}
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never fired")
	}

	// Give any spurious extra callback time to fire.
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback fired %d times, want 1", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	debouncer.Trigger(func() {
		calls.Add(1)
	})

	debouncer.Stop()

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback fired %d times after Stop, want 0", got)
	}
}
