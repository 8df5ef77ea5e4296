package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id TEXT PRIMARY KEY,
			glacier_id TEXT NOT NULL,
			stress_type TEXT NOT NULL,
			intensity REAL NOT NULL,
			temperature_delta REAL NOT NULL,
			ice_volume_loss REAL NOT NULL,
			meltwater REAL NOT NULL,
			crack_depth REAL NOT NULL,
			stability_risk TEXT NOT NULL,
			flood_risk TEXT NOT NULL,
			population_risk TEXT NOT NULL,
			damage_musd REAL NOT NULL,
			affected_population INTEGER NOT NULL,
			status TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		);

		CREATE INDEX IF NOT EXISTS idx_runs_glacier_id ON simulation_runs(glacier_id);
		CREATE INDEX IF NOT EXISTS idx_runs_started_at ON simulation_runs(started_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) Add(ctx context.Context, run *models.SimulationRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO simulation_runs (
			id, glacier_id, stress_type, intensity, temperature_delta,
			ice_volume_loss, meltwater, crack_depth,
			stability_risk, flood_risk, population_risk,
			damage_musd, affected_population, status, started_at, ended_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GlacierID, string(run.Stress), run.Intensity, run.TempDelta,
		run.Result.IceVolumeLossKm3, run.Result.MeltwaterKm3, run.Result.CrackDepthM,
		string(run.Result.StabilityRisk), string(run.Result.FloodRisk), string(run.Result.PopulationRisk),
		run.Result.DamageMillionUSD, run.Result.AffectedPopulation,
		string(run.Status), run.StartedAt, run.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting simulation run: %w", err)
	}
	return nil
}

func (s *SQLiteDB) GetByID(ctx context.Context, id string) (*models.SimulationRun, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying simulation run: %w", err)
	}
	return run, nil
}

func (s *SQLiteDB) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM simulation_runs WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking simulation run: %w", err)
	}
	return true, nil
}

func (s *SQLiteDB) List(ctx context.Context, opts Filter) ([]models.SimulationRun, error) {
	var (
		conds []string
		args  []any
	)
	if opts.GlacierID != nil {
		conds = append(conds, "glacier_id = ?")
		args = append(args, *opts.GlacierID)
	}
	if opts.Stress != nil {
		conds = append(conds, "stress_type = ?")
		args = append(args, string(*opts.Stress))
	}
	if opts.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, string(*opts.Status))
	}
	if opts.Since != nil {
		conds = append(conds, "started_at >= ?")
		args = append(args, *opts.Since)
	}

	q := selectRuns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY started_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	q += " LIMIT ?"
	args = append(args, limit)
	if opts.Offset > 0 {
		q += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []models.SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning simulation run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (s *SQLiteDB) Finish(ctx context.Context, id string, status models.RunStatus, endedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE simulation_runs SET status = ?, ended_at = ? WHERE id = ?`,
		string(status), endedAt, id,
	)
	if err != nil {
		return fmt.Errorf("error finishing simulation run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("simulation run not found: %s", id)
	}
	return nil
}

const selectRuns = `
	SELECT id, glacier_id, stress_type, intensity, temperature_delta,
		ice_volume_loss, meltwater, crack_depth,
		stability_risk, flood_risk, population_risk,
		damage_musd, affected_population, status, started_at, ended_at
	FROM simulation_runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.SimulationRun, error) {
	var (
		run     models.SimulationRun
		stress  string
		stab    string
		flood   string
		pop     string
		status  string
		endedAt sql.NullTime
	)
	err := row.Scan(
		&run.ID, &run.GlacierID, &stress, &run.Intensity, &run.TempDelta,
		&run.Result.IceVolumeLossKm3, &run.Result.MeltwaterKm3, &run.Result.CrackDepthM,
		&stab, &flood, &pop,
		&run.Result.DamageMillionUSD, &run.Result.AffectedPopulation,
		&status, &run.StartedAt, &endedAt,
	)
	if err != nil {
		return nil, err
	}
	run.Stress = models.StressType(stress)
	run.Result.StabilityRisk = models.RiskLevel(stab)
	run.Result.FloodRisk = models.RiskLevel(flood)
	run.Result.PopulationRisk = models.RiskLevel(pop)
	run.Status = models.RunStatus(status)
	if endedAt.Valid {
		t := endedAt.Time
		run.EndedAt = &t
	}
	return &run, nil
}
