package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pamirlabs/glacier-atlas/internal/models"
	"github.com/pamirlabs/glacier-atlas/internal/repository"
	"github.com/pamirlabs/glacier-atlas/internal/stream"
)

// Runner executes simulations: it computes the result up front, records the
// run, then advances melt progress from 0 to 1 on a fixed-interval ticker,
// emitting a frame per tick. The progress counter is the only "animation";
// the result itself never changes after Start.
type Runner struct {
	repo        repository.SimulationRepository
	broadcaster *stream.Broadcaster
	tickEvery   time.Duration
	steps       int

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

func NewRunner(repo repository.SimulationRepository, b *stream.Broadcaster, tickEvery time.Duration, steps int) *Runner {
	if tickEvery <= 0 {
		tickEvery = 200 * time.Millisecond
	}
	if steps <= 0 {
		steps = 20
	}
	return &Runner{
		repo:        repo,
		broadcaster: b,
		tickEvery:   tickEvery,
		steps:       steps,
		cancels:     make(map[string]context.CancelFunc),
	}
}

// Start validates and records a new run, then advances it in the background.
// A nil glacier is rejected before anything is computed or persisted.
func (r *Runner) Start(ctx context.Context, g *models.Glacier, in models.SimulationInput) (*models.SimulationRun, error) {
	result, err := Compute(g, in)
	if err != nil {
		return nil, err
	}

	run := &models.SimulationRun{
		ID:        uuid.NewString(),
		GlacierID: g.ID,
		Stress:    in.Stress,
		Intensity: clamp(in.Intensity, MinIntensity, MaxIntensity),
		TempDelta: clamp(in.TemperatureDelta, MinTempDelta, MaxTempDelta),
		Result:    result,
		Status:    models.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	if err := r.repo.Add(ctx, run); err != nil {
		return nil, fmt.Errorf("error recording simulation run: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		cancel()
		return nil, fmt.Errorf("runner is shut down")
	}
	r.cancels[run.ID] = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go r.advance(runCtx, run)
	return run, nil
}

// Cancel stops a running simulation. Returns false if the run is unknown or
// already finished.
func (r *Runner) Cancel(id string) bool {
	r.mu.Lock()
	cancel, ok := r.cancels[id]
	r.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// Stop cancels all runs and waits for their goroutines to finish.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.closed = true
	for _, cancel := range r.cancels {
		cancel()
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Runner) advance(ctx context.Context, run *models.SimulationRun) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.tickEvery)
	defer ticker.Stop()

	for step := 1; step <= r.steps; step++ {
		select {
		case <-ctx.Done():
			r.release(run.ID)
			r.finish(run.ID, models.RunStatusCancelled)
			return
		case <-ticker.C:
			progress := float64(step) / float64(r.steps)
			if r.broadcaster != nil {
				r.broadcaster.Broadcast(models.MeltFrame{
					RunID:        run.ID,
					GlacierID:    run.GlacierID,
					Progress:     progress,
					MeltedKm3:    run.Result.IceVolumeLossKm3 * progress,
					MeltwaterKm3: run.Result.MeltwaterKm3 * progress,
					Done:         step == r.steps,
				})
			}
		}
	}

	r.release(run.ID)
	r.finish(run.ID, models.RunStatusCompleted)
}

// release drops the run's cancel entry so Cancel reports unknown from here
// on, before the terminal status lands in the repository.
func (r *Runner) release(id string) {
	r.mu.Lock()
	if cancel, ok := r.cancels[id]; ok {
		cancel()
		delete(r.cancels, id)
	}
	r.mu.Unlock()
}

func (r *Runner) finish(id string, status models.RunStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.repo.Finish(ctx, id, status, time.Now().UTC()); err != nil {
		slog.Error("error finishing simulation run", "id", id, "error", err)
		return
	}
	slog.Info("simulation run finished", "id", id, "status", status)
}
