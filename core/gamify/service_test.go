package gamify_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
	"github.com/gouravgowda/SeniorAI-Redesign/services/email"
	"github.com/gouravgowda/SeniorAI-Redesign/storage/database/inmem"
)

type fixture struct {
	svc     *gamify.Service
	repo    gamify.Repository
	usrRepo user.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	repo := inmemdb.NewGamifyRepository(db)
	usrRepo := inmemdb.NewUserRepository(db)
	return &fixture{
		svc:     gamify.NewService(nil, repo, usrRepo, emailsvc.NewConsoleServiceMock()),
		repo:    repo,
		usrRepo: usrRepo,
	}
}

func (f *fixture) createUser(t *testing.T, id, name string) user.User {
	t.Helper()
	now := time.Now().UTC()
	usr, err := f.usrRepo.CreateUser(context.Background(), user.User{
		ID:        id,
		Name:      name,
		Username:  name,
		Email:     name + "@test.cd",
		Badge:     "BRONZE",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("createUser(%s): %v", name, err)
	}
	return usr
}

func intPtr(i int) *int { return &i }

func Test_Service_AwardPoints(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	usr := f.createUser(t, "u1", "jane")

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := f.svc.AwardPoints(ctx, usr.ID, "HACKING", nil)
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("err = %v; want ValidationError", err)
		}
		assert.Equal(t, "activity", vErr.Fields[0].Field)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.AwardPoints(ctx, "nope", gamify.KindQuizCompleted, nil)
		assert.Equal(t, user.ErrNotFound, errors.Cause(err))
	})

	t.Run("default amount", func(t *testing.T) {
		res, err := f.svc.AwardPoints(ctx, usr.ID, gamify.KindQuizCompleted, nil)
		assert.NoError(t, err)
		assert.Equal(t, gamify.AwardResult{PointsAdded: 10, TotalPoints: 10, Badge: gamify.BadgeBronze}, res)
	})

	t.Run("awards accumulate, not idempotent", func(t *testing.T) {
		res, err := f.svc.AwardPoints(ctx, usr.ID, gamify.KindQuizCompleted, nil)
		assert.NoError(t, err)
		assert.Equal(t, 20, res.TotalPoints)
	})

	t.Run("custom amount and badge upgrade", func(t *testing.T) {
		res, err := f.svc.AwardPoints(ctx, usr.ID, gamify.KindProjectCompleted, intPtr(100))
		assert.NoError(t, err)
		assert.Equal(t, gamify.AwardResult{PointsAdded: 100, TotalPoints: 120, Badge: gamify.BadgeSilver, BadgeUpgraded: true}, res)
	})

	t.Run("activity records appended", func(t *testing.T) {
		acts, err := f.svc.RecentActivities(ctx, usr.ID, 0)
		assert.NoError(t, err)
		if assert.Len(t, acts, 3) {
			// most recent first
			assert.Equal(t, gamify.KindProjectCompleted, acts[0].Kind)
			assert.Equal(t, 100, acts[0].PointsEarned)
		}
	})
}

func Test_Service_UserPoints(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	usr := f.createUser(t, "u1", "jane")

	// unknown users read as zero points on BRONZE
	sum, err := f.svc.UserPoints(ctx, "nope")
	assert.NoError(t, err)
	assert.Equal(t, gamify.PointsSummary{Points: 0, Badge: gamify.BadgeBronze}, sum)

	_, err = f.svc.AwardPoints(ctx, usr.ID, gamify.KindProfileCompleted, intPtr(600))
	assert.NoError(t, err)

	sum, err = f.svc.UserPoints(ctx, usr.ID)
	assert.NoError(t, err)
	assert.Equal(t, gamify.PointsSummary{Points: 600, Badge: gamify.BadgeGold}, sum)
}

func Test_Service_Leaderboard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	top := f.createUser(t, "u1", "top")
	mid := f.createUser(t, "u2", "mid")
	low := f.createUser(t, "u3", "low")
	f.createUser(t, "u4", "idle") // 0 points; never listed

	_, err := f.svc.AwardPoints(ctx, top.ID, gamify.KindProjectCompleted, intPtr(300))
	assert.NoError(t, err)
	_, err = f.svc.AwardPoints(ctx, mid.ID, gamify.KindProjectCompleted, intPtr(200))
	assert.NoError(t, err)
	_, err = f.svc.AwardPoints(ctx, low.ID, gamify.KindProjectCompleted, intPtr(100))
	assert.NoError(t, err)

	t.Run("ranks are 1-based output positions", func(t *testing.T) {
		entries, err := f.svc.Leaderboard(ctx, gamify.TimeframeAll, 0)
		assert.NoError(t, err)
		if assert.Len(t, entries, 3) {
			assert.Equal(t, []string{"top", "mid", "low"}, []string{entries[0].Username, entries[1].Username, entries[2].Username})
			for i, e := range entries {
				assert.Equal(t, i+1, e.Rank)
			}
		}
	})

	t.Run("empty timeframe defaults to all", func(t *testing.T) {
		entries, err := f.svc.Leaderboard(ctx, "", 0)
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("limit caps results", func(t *testing.T) {
		entries, err := f.svc.Leaderboard(ctx, gamify.TimeframeAll, 2)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("unknown timeframe is rejected", func(t *testing.T) {
		_, err := f.svc.Leaderboard(ctx, "yearly", 0)
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("err = %v; want ValidationError", err)
		}
		assert.Equal(t, "timeframe", vErr.Fields[0].Field)
	})

	t.Run("weekly excludes stale awards", func(t *testing.T) {
		// push low's last award out of the window
		stale := time.Now().UTC().AddDate(0, 0, -10)
		err := f.repo.UpdateUserPoints(ctx, low.ID, 100, gamify.BadgeSilver, stale)
		assert.NoError(t, err)

		entries, err := f.svc.Leaderboard(ctx, gamify.TimeframeWeekly, 0)
		assert.NoError(t, err)
		if assert.Len(t, entries, 2) {
			assert.Equal(t, "top", entries[0].Username)
			assert.Equal(t, "mid", entries[1].Username)
		}

		// still visible on the monthly board
		entries, err = f.svc.Leaderboard(ctx, gamify.TimeframeMonthly, 0)
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func Test_Service_UserRank(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	top := f.createUser(t, "u1", "top")
	low := f.createUser(t, "u2", "low")

	_, err := f.svc.AwardPoints(ctx, top.ID, gamify.KindProjectCompleted, intPtr(300))
	assert.NoError(t, err)
	_, err = f.svc.AwardPoints(ctx, low.ID, gamify.KindProjectCompleted, intPtr(100))
	assert.NoError(t, err)

	res, err := f.svc.UserRank(ctx, top.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, res.Rank) {
		assert.Equal(t, 1, *res.Rank)
	}
	assert.Equal(t, 300, res.TotalPoints)
	assert.Equal(t, gamify.BadgeSilver, res.Badge)

	res, err = f.svc.UserRank(ctx, low.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, res.Rank) {
		assert.Equal(t, 2, *res.Rank)
	}

	// unknown users get a nil rank
	res, err = f.svc.UserRank(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, res.Rank)
	assert.Equal(t, 0, res.TotalPoints)
	assert.Equal(t, gamify.BadgeBronze, res.Badge)
}

func Test_Service_RecentActivities(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	usr := f.createUser(t, "u1", "jane")

	// empty history serializes as [], not null
	acts, err := f.svc.RecentActivities(ctx, usr.ID, 0)
	assert.NoError(t, err)
	assert.NotNil(t, acts)
	assert.Len(t, acts, 0)

	for i := 0; i < 12; i++ {
		_, err = f.svc.AwardPoints(ctx, usr.ID, gamify.KindDailyLogin, nil)
		assert.NoError(t, err)
	}

	// default limit is 10
	acts, err = f.svc.RecentActivities(ctx, usr.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, acts, 10)

	acts, err = f.svc.RecentActivities(ctx, usr.ID, 3)
	assert.NoError(t, err)
	assert.Len(t, acts, 3)
}
