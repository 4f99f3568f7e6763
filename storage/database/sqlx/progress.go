package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
)

type stepRow struct {
	StepID    string    `db:"step_id"`
	Completed bool      `db:"completed"`
	Seq       int       `db:"seq"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r stepRow) toStep() progress.Step {
	return progress.Step{StepID: r.StepID, Completed: r.Completed, Seq: r.Seq, UpdatedAt: r.UpdatedAt}
}

type progressRepository struct {
	db *sqlx.DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *sqlx.DB) *progressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) SaveStep(ctx context.Context, userID, stepID string, completed bool, at time.Time) ([]progress.Step, error) {
	// seq is assigned once, on first touch; later saves only flip the flag
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO progress_steps (user_id, step_id, completed, seq, updated_at)
		 VALUES ($1, $2, $3, (SELECT COALESCE(MAX(seq), 0) + 1 FROM progress_steps WHERE user_id = $1), $4)
		 ON CONFLICT (user_id, step_id)
		 DO UPDATE SET completed = EXCLUDED.completed, updated_at = EXCLUDED.updated_at`,
		userID, stepID, completed, at.UTC(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "upserting progress step")
	}
	return repo.ListSteps(ctx, userID)
}

func (repo *progressRepository) ListSteps(ctx context.Context, userID string) ([]progress.Step, error) {
	var rows []stepRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT step_id, completed, seq, updated_at FROM progress_steps WHERE user_id = $1 ORDER BY seq ASC`,
		userID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying progress steps")
	}
	steps := make([]progress.Step, 0, len(rows))
	for _, r := range rows {
		steps = append(steps, r.toStep())
	}
	return steps, nil
}
