package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
	"github.com/gouravgowda/SeniorAI-Redesign/storage/database/inmem"
)

func setup(t *testing.T) (*progress.Service, user.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	return progress.NewService(inmemdb.NewProgressRepository(db), usrRepo), usrRepo
}

func createUser(t *testing.T, repo user.Repository, id string) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr, err := repo.CreateUser(context.Background(), user.User{
		ID:        id,
		Name:      "Jane",
		Username:  "jane",
		Email:     "jane@test.cd",
		Badge:     "BRONZE",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func strPtr(s string) *string { return &s }

func Test_Service_Save(t *testing.T) {
	svc, usrRepo := setup(t)
	ctx := context.Background()
	usr := createUser(t, usrRepo, "u1")

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Save(ctx, "nope", "step_1", true)
		assert.Equal(t, user.ErrNotFound, errors.Cause(err))
	})

	t.Run("first completed step", func(t *testing.T) {
		rep, err := svc.Save(ctx, usr.ID, "step_1", true)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{TotalProgress: 1, CompletedSteps: 1, TotalSteps: 1}, rep)
	})

	t.Run("incomplete step becomes the recommendation", func(t *testing.T) {
		rep, err := svc.Save(ctx, usr.ID, "step_2", false)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{TotalProgress: 0.5, CompletedSteps: 1, TotalSteps: 2, NextRecommendedStep: strPtr("step_2")}, rep)
	})

	t.Run("re-saving merges instead of duplicating", func(t *testing.T) {
		rep, err := svc.Save(ctx, usr.ID, "step_2", true)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{TotalProgress: 1, CompletedSteps: 2, TotalSteps: 2}, rep)
	})

	t.Run("un-completing keeps the step counted", func(t *testing.T) {
		rep, err := svc.Save(ctx, usr.ID, "step_1", false)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{TotalProgress: 0.5, CompletedSteps: 1, TotalSteps: 2, NextRecommendedStep: strPtr("step_1")}, rep)
	})

	t.Run("saving bumps last_active", func(t *testing.T) {
		got, err := usrRepo.GetUserByID(ctx, usr.ID)
		assert.NoError(t, err)
		assert.False(t, got.LastActive.IsZero())
	})
}

func Test_Service_Summary(t *testing.T) {
	svc, usrRepo := setup(t)
	ctx := context.Background()
	usr := createUser(t, usrRepo, "u1")

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Summary(ctx, "nope")
		assert.Equal(t, user.ErrNotFound, errors.Cause(err))
	})

	t.Run("no steps yet", func(t *testing.T) {
		rep, err := svc.Summary(ctx, usr.ID)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{}, rep)
	})

	t.Run("next recommendation follows first-touch order", func(t *testing.T) {
		_, err := svc.Save(ctx, usr.ID, "step_1", false)
		assert.NoError(t, err)
		_, err = svc.Save(ctx, usr.ID, "step_2", false)
		assert.NoError(t, err)
		_, err = svc.Save(ctx, usr.ID, "step_1", true)
		assert.NoError(t, err)

		rep, err := svc.Summary(ctx, usr.ID)
		assert.NoError(t, err)
		assert.Equal(t, progress.Report{TotalProgress: 0.5, CompletedSteps: 1, TotalSteps: 2, NextRecommendedStep: strPtr("step_2")}, rep)
	})
}
