package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type gamifyRepository struct {
	db *DB
}

var _ gamify.Repository = (*gamifyRepository)(nil) // interface compliance check

func NewGamifyRepository(db *DB) *gamifyRepository {
	return &gamifyRepository{db: db}
}

func (repo *gamifyRepository) UpdateUserPoints(_ context.Context, userID string, points int, badge gamify.Badge, at time.Time, _ ...core.DBExecutor) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	usr, ok := repo.db.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	usr.Points = points
	usr.Badge = badge.String()
	usr.LastPointsUpdate = at
	return nil
}

func (repo *gamifyRepository) AppendActivity(_ context.Context, act gamify.Activity, _ ...core.DBExecutor) (gamify.Activity, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	repo.db.activities = append(repo.db.activities, act)
	return act, nil
}

func (repo *gamifyRepository) RecentActivities(_ context.Context, userID string, limit int) ([]gamify.Activity, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var acts []gamify.Activity
	for _, act := range repo.db.activities {
		if act.UserID == userID {
			acts = append(acts, act)
		}
	}
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].Timestamp.After(acts[j].Timestamp) })
	if len(acts) > limit {
		acts = acts[:limit]
	}
	return acts, nil
}

func (repo *gamifyRepository) RankedUsers(_ context.Context, since time.Time, limit int) ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var users []user.User
	for _, usr := range repo.db.users {
		if usr.Points <= 0 {
			continue
		}
		if !since.IsZero() && usr.LastPointsUpdate.Before(since) {
			continue
		}
		users = append(users, *usr)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		if !users[i].LastPointsUpdate.Equal(users[j].LastPointsUpdate) {
			return users[i].LastPointsUpdate.Before(users[j].LastPointsUpdate)
		}
		return users[i].ID < users[j].ID
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (repo *gamifyRepository) CountUsersWithMorePoints(_ context.Context, points int) (int, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	var count int
	for _, usr := range repo.db.users {
		if usr.Points > points {
			count++
		}
	}
	return count, nil
}
