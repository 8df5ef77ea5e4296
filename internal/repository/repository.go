package repository

import (
	"context"
	"time"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type Filter struct {
	Limit     int
	Offset    int
	GlacierID *string
	Stress    *models.StressType
	Status    *models.RunStatus
	Since     *time.Time
}

// SimulationRepository records simulation runs and their computed results.
type SimulationRepository interface {
	Add(ctx context.Context, run *models.SimulationRun) error
	GetByID(ctx context.Context, id string) (*models.SimulationRun, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, opts Filter) ([]models.SimulationRun, error)
	Finish(ctx context.Context, id string, status models.RunStatus, endedAt time.Time) error
}
