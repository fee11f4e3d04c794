package history

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRecordAndList(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		run := NewRun(SchemaSettings, "settings.yaml", testResult(i != 1, 0))
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if !runs[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected newest run first, got %v", runs[0].CreatedAt)
	}
}

func TestMemoryStoreFilters(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	settings := NewRun(SchemaSettings, "settings.yaml", testResult(true, 0))
	settings.CreatedAt = base
	diags := NewRun(SchemaDiagnostics, "diags.yaml", testResult(false, 1))
	diags.CreatedAt = base.Add(time.Hour)

	if err := store.Record(ctx, settings); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, diags); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.List(ctx, &Query{Schema: SchemaDiagnostics})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].File != "diags.yaml" {
		t.Errorf("expected the diagnostics run, got %v", runs)
	}

	runs, err = store.List(ctx, &Query{File: "settings.yaml"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Schema != SchemaSettings {
		t.Errorf("expected the settings run, got %v", runs)
	}

	since := base.Add(30 * time.Minute)
	runs, err = store.List(ctx, &Query{Since: &since})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Schema != SchemaDiagnostics {
		t.Errorf("expected only the later run, got %v", runs)
	}

	runs, err = store.List(ctx, &Query{Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run with limit, got %d", len(runs))
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	run := NewRun(SchemaSettings, "settings.yaml", testResult(true, 0))
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Mutating the caller's run must not change the stored copy.
	run.File = "mutated.yaml"

	runs, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if runs[0].File != "settings.yaml" {
		t.Errorf("stored run was mutated: %s", runs[0].File)
	}
}
