package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRun(id, glacierID string) *models.SimulationRun {
	return &models.SimulationRun{
		ID:        id,
		GlacierID: glacierID,
		Stress:    models.StressWarming,
		Intensity: 100,
		TempDelta: 10,
		Result: models.SimulationResult{
			IceVolumeLossKm3:   14.4,
			MeltwaterKm3:       12.96,
			CrackDepthM:        300,
			StabilityRisk:      models.RiskMedium,
			FloodRisk:          models.RiskHigh,
			PopulationRisk:     models.RiskHigh,
			DamageMillionUSD:   144,
			AffectedPopulation: 350000,
		},
		Status:    models.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
}

func TestSQLiteDB_AddAndGet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	run := testRun("run_1", "fedchenko")
	if err := db.Add(ctx, run); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := db.GetByID(ctx, "run_1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected run, got nil")
	}
	if got.GlacierID != "fedchenko" {
		t.Errorf("expected glacier fedchenko, got %s", got.GlacierID)
	}
	if got.Result.IceVolumeLossKm3 != 14.4 {
		t.Errorf("expected loss 14.4, got %v", got.Result.IceVolumeLossKm3)
	}
	if got.Result.FloodRisk != models.RiskHigh {
		t.Errorf("expected high flood risk, got %s", got.Result.FloodRisk)
	}
	if got.EndedAt != nil {
		t.Error("expected no ended_at on a running run")
	}
}

func TestSQLiteDB_GetMissing(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil for missing run")
	}
}

func TestSQLiteDB_Exists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	exists, err := db.Exists(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected false for nonexistent ID")
	}

	db.Add(ctx, testRun("exists_test", "garmo"))

	exists, err = db.Exists(ctx, "exists_test")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected true for existing ID")
	}
}

func TestSQLiteDB_ListWithFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := testRun("a", "fedchenko")
	b := testRun("b", "garmo")
	b.Stress = models.StressSeismic
	c := testRun("c", "fedchenko")
	c.Status = models.RunStatusCompleted
	for _, r := range []*models.SimulationRun{a, b, c} {
		if err := db.Add(ctx, r); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	fed := "fedchenko"
	runs, err := db.List(ctx, Filter{GlacierID: &fed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 fedchenko runs, got %d", len(runs))
	}

	seismic := models.StressSeismic
	runs, err = db.List(ctx, Filter{Stress: &seismic})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "b" {
		t.Errorf("expected only run b for seismic, got %d", len(runs))
	}

	completed := models.RunStatusCompleted
	runs, err = db.List(ctx, Filter{Status: &completed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "c" {
		t.Errorf("expected only run c completed, got %d", len(runs))
	}

	runs, err = db.List(ctx, Filter{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected limit of 2, got %d", len(runs))
	}
}

func TestSQLiteDB_Finish(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	db.Add(ctx, testRun("run_f", "zeravshan"))

	ended := time.Now().UTC()
	if err := db.Finish(ctx, "run_f", models.RunStatusCompleted, ended); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	got, _ := db.GetByID(ctx, "run_f")
	if got.Status != models.RunStatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if got.EndedAt == nil {
		t.Error("expected ended_at set")
	}

	if err := db.Finish(ctx, "missing", models.RunStatusCompleted, ended); err == nil {
		t.Error("expected error finishing unknown run")
	}
}

func TestSQLiteDB_DuplicateAdd(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	run := testRun("dup", "medvezhiy")
	if err := db.Add(ctx, run); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := db.Add(ctx, run); err == nil {
		t.Error("expected error for duplicate ID, got nil")
	}
}
