package simulation

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/pamirlabs/glacier-atlas/internal/models"
	"github.com/pamirlabs/glacier-atlas/internal/repository"
	"github.com/pamirlabs/glacier-atlas/internal/stream"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeRepo implements repository.SimulationRepository in memory.
type fakeRepo struct {
	mu   sync.Mutex
	runs map[string]*models.SimulationRun
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{runs: make(map[string]*models.SimulationRun)}
}

func (f *fakeRepo) Add(ctx context.Context, run *models.SimulationRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *run
	f.runs[run.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.SimulationRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if run, ok := f.runs[id]; ok {
		cp := *run
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.runs[id]
	return ok, nil
}

func (f *fakeRepo) List(ctx context.Context, opts repository.Filter) ([]models.SimulationRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SimulationRun
	for _, run := range f.runs {
		out = append(out, *run)
	}
	return out, nil
}

func (f *fakeRepo) Finish(ctx context.Context, id string, status models.RunStatus, endedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return nil
	}
	run.Status = status
	run.EndedAt = &endedAt
	return nil
}

func (f *fakeRepo) status(id string) models.RunStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if run, ok := f.runs[id]; ok {
		return run.Status
	}
	return ""
}

func testInput() models.SimulationInput {
	return models.SimulationInput{
		GlacierID:        "fedchenko",
		Stress:           models.StressWarming,
		Intensity:        100,
		TemperatureDelta: 10,
	}
}

func TestRunner_RejectsNilGlacier(t *testing.T) {
	repo := newFakeRepo()
	r := NewRunner(repo, nil, 5*time.Millisecond, 3)
	defer r.Stop()

	_, err := r.Start(context.Background(), nil, testInput())
	if err != ErrNoGlacier {
		t.Fatalf("expected ErrNoGlacier, got %v", err)
	}
	if len(repo.runs) != 0 {
		t.Errorf("expected nothing persisted, got %d runs", len(repo.runs))
	}
}

func TestRunner_RunCompletes(t *testing.T) {
	repo := newFakeRepo()
	b := stream.NewBroadcaster()
	defer b.Close()

	r := NewRunner(repo, b, 5*time.Millisecond, 4)
	defer r.Stop()

	_, ch := b.Subscribe()

	run, err := r.Start(context.Background(), fedchenko(), testInput())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if run.Status != models.RunStatusRunning {
		t.Errorf("expected running status, got %s", run.Status)
	}

	var frames []models.MeltFrame
	deadline := time.After(2 * time.Second)
	for {
		select {
		case f := <-ch:
			frames = append(frames, f)
		case <-deadline:
			t.Fatal("timeout waiting for melt frames")
		}
		if len(frames) > 0 && frames[len(frames)-1].Done {
			break
		}
	}

	if len(frames) != 4 {
		t.Errorf("expected 4 frames, got %d", len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Progress <= frames[i-1].Progress {
			t.Errorf("progress not increasing at frame %d", i)
		}
	}
	last := frames[len(frames)-1]
	if last.Progress != 1 {
		t.Errorf("expected final progress 1, got %v", last.Progress)
	}
	if last.MeltedKm3 != run.Result.IceVolumeLossKm3 {
		t.Errorf("expected final melted %v, got %v", run.Result.IceVolumeLossKm3, last.MeltedKm3)
	}

	// Give the finish write a moment.
	waitFor(t, func() bool { return repo.status(run.ID) == models.RunStatusCompleted })
}

func TestRunner_Cancel(t *testing.T) {
	repo := newFakeRepo()
	r := NewRunner(repo, nil, 50*time.Millisecond, 100)
	defer r.Stop()

	run, err := r.Start(context.Background(), fedchenko(), testInput())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !r.Cancel(run.ID) {
		t.Fatal("expected Cancel to find the run")
	}

	waitFor(t, func() bool { return repo.status(run.ID) == models.RunStatusCancelled })

	if r.Cancel(run.ID) {
		t.Error("expected Cancel to report unknown run after completion")
	}
}

func TestRunner_StopCancelsAll(t *testing.T) {
	repo := newFakeRepo()
	r := NewRunner(repo, nil, 50*time.Millisecond, 100)

	run1, _ := r.Start(context.Background(), fedchenko(), testInput())
	run2, _ := r.Start(context.Background(), fedchenko(), testInput())

	r.Stop()

	for _, id := range []string{run1.ID, run2.ID} {
		if got := repo.status(id); got != models.RunStatusCancelled {
			t.Errorf("run %s: expected cancelled, got %s", id, got)
		}
	}

	if _, err := r.Start(context.Background(), fedchenko(), testInput()); err == nil {
		t.Error("expected Start to fail after Stop")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}
