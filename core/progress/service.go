package progress

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type (
	Repository interface {
		// SaveStep merges the completion flag for (userID, stepID), assigning
		// the next sequence number on first touch, and returns the user's full
		// step list ordered by Seq ascending.
		SaveStep(ctx context.Context, userID, stepID string, completed bool, at time.Time) ([]Step, error)
		// ListSteps returns the user's steps ordered by Seq ascending.
		ListSteps(ctx context.Context, userID string) ([]Step, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

// Save records the completion flag for one roadmap step and returns the
// recomputed progress report. Steps accumulate: once recorded, a step stays
// in the denominator for good.
func (svc *Service) Save(ctx context.Context, userID, stepID string, completed bool) (Report, error) {
	usr, err := svc.usrRepo.GetUserByID(ctx, userID)
	if err != nil {
		return Report{}, errors.Wrap(err, "getting user")
	}

	now := time.Now().UTC()
	steps, err := svc.repo.SaveStep(ctx, usr.ID, stepID, completed, now)
	if err != nil {
		return Report{}, errors.Wrap(err, "saving step")
	}
	if err := svc.usrRepo.TouchLastActive(ctx, usr.ID, now); err != nil {
		return Report{}, errors.Wrap(err, "touching last_active")
	}
	return buildReport(steps), nil
}

// Summary recomputes the progress report without saving anything.
func (svc *Service) Summary(ctx context.Context, userID string) (Report, error) {
	if _, err := svc.usrRepo.GetUserByID(ctx, userID); err != nil {
		return Report{}, errors.Wrap(err, "getting user")
	}
	steps, err := svc.repo.ListSteps(ctx, userID)
	if err != nil {
		return Report{}, errors.Wrap(err, "listing steps")
	}
	return buildReport(steps), nil
}

func buildReport(steps []Step) Report {
	var rep Report
	rep.TotalSteps = len(steps)
	for _, s := range steps {
		if s.Completed {
			rep.CompletedSteps++
		} else if rep.NextRecommendedStep == nil {
			stepID := s.StepID
			rep.NextRecommendedStep = &stepID
		}
	}
	if rep.TotalSteps > 0 {
		rep.TotalProgress = float64(rep.CompletedSteps) / float64(rep.TotalSteps)
	}
	return rep
}
