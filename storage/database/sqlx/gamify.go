package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type activityRow struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Activity     string    `db:"activity"`
	PointsEarned int       `db:"points_earned"`
	Timestamp    time.Time `db:"timestamp"`
}

func (r activityRow) toActivity() gamify.Activity {
	return gamify.Activity{
		ID:           r.ID,
		UserID:       r.UserID,
		Kind:         gamify.Kind(r.Activity),
		PointsEarned: r.PointsEarned,
		Timestamp:    r.Timestamp,
	}
}

type gamifyRepository struct {
	db *sqlx.DB
}

var _ gamify.Repository = (*gamifyRepository)(nil) // interface compliance check

func NewGamifyRepository(db *sqlx.DB) *gamifyRepository {
	return &gamifyRepository{db: db}
}

func (repo *gamifyRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 && svcExec[0] != nil {
		return svcExec[0]
	}
	return repo.db
}

func (repo *gamifyRepository) UpdateUserPoints(ctx context.Context, userID string, points int, badge gamify.Badge, at time.Time, exec ...core.DBExecutor) error {
	res, err := repo.getExec(exec).ExecContext(ctx,
		`UPDATE users SET points = $1, badge = $2, last_points_update = $3 WHERE id = $4`,
		points, badge.String(), at.UTC(), userID,
	)
	if err != nil {
		return errors.Wrap(err, "updating user points")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo *gamifyRepository) AppendActivity(ctx context.Context, act gamify.Activity, exec ...core.DBExecutor) (gamify.Activity, error) {
	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	_, err := repo.getExec(exec).ExecContext(ctx,
		`INSERT INTO activities (id, user_id, activity, points_earned, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		act.ID, act.UserID, string(act.Kind), act.PointsEarned, act.Timestamp.UTC(),
	)
	if err != nil {
		return gamify.Activity{}, errors.Wrap(err, "inserting activity")
	}
	return act, nil
}

func (repo *gamifyRepository) RecentActivities(ctx context.Context, userID string, limit int) ([]gamify.Activity, error) {
	var rows []activityRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, activity, points_earned, timestamp FROM activities
		 WHERE user_id = $1 ORDER BY timestamp DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying activities")
	}
	acts := make([]gamify.Activity, 0, len(rows))
	for _, r := range rows {
		acts = append(acts, r.toActivity())
	}
	return acts, nil
}

func (repo *gamifyRepository) RankedUsers(ctx context.Context, since time.Time, limit int) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE points > 0`
	args := []interface{}{}
	if !since.IsZero() {
		query += ` AND last_points_update >= $1`
		args = append(args, since.UTC())
	}
	query += ` ORDER BY points DESC, last_points_update ASC NULLS LAST, id ASC`
	if !since.IsZero() {
		query += ` LIMIT $2`
	} else {
		query += ` LIMIT $1`
	}
	args = append(args, limit)

	var rows []userRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying ranked users")
	}
	users := make([]user.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toUser())
	}
	return users, nil
}

func (repo *gamifyRepository) CountUsersWithMorePoints(ctx context.Context, points int) (int, error) {
	var count int
	err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE points > $1`, points)
	if err != nil {
		return 0, errors.Wrap(err, "counting users with more points")
	}
	return count, nil
}
