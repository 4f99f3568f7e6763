package inmemdb

import (
	"context"
	"time"

	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
)

type progressRepository struct {
	db *DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) *progressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) SaveStep(_ context.Context, userID, stepID string, completed bool, at time.Time) ([]progress.Step, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	steps := repo.db.steps[userID]
	found := false
	for i := range steps {
		if steps[i].StepID == stepID {
			steps[i].Completed = completed
			steps[i].UpdatedAt = at
			found = true
			break
		}
	}
	if !found {
		steps = append(steps, progress.Step{
			StepID:    stepID,
			Completed: completed,
			Seq:       len(steps) + 1,
			UpdatedAt: at,
		})
	}
	repo.db.steps[userID] = steps

	return copySteps(steps), nil
}

func (repo *progressRepository) ListSteps(_ context.Context, userID string) ([]progress.Step, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return copySteps(repo.db.steps[userID]), nil
}

func copySteps(steps []progress.Step) []progress.Step {
	out := make([]progress.Step, len(steps))
	copy(out, steps)
	return out
}
