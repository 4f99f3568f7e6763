package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type userRow struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	Avatar           string    `db:"avatar"`
	Points           int       `db:"points"`
	Badge            string    `db:"badge"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
	LastActive       null.Time `db:"last_active"`
	LastPointsUpdate null.Time `db:"last_points_update"`
}

func (r userRow) toUser() user.User {
	return user.User{
		ID:               r.ID,
		Name:             r.Name,
		Username:         r.Username,
		Email:            r.Email,
		Avatar:           r.Avatar,
		Points:           r.Points,
		Badge:            r.Badge,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		LastActive:       r.LastActive.Time,
		LastPointsUpdate: r.LastPointsUpdate.Time,
	}
}

const userColumns = `id, name, username, email, avatar, points, badge, is_active,
	created_at, updated_at, last_active, last_points_update`

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to user.ErrNotFound
func trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return user.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo *userRepository) CheckUsernameUniqueness(ctx context.Context, username, email string, excludedUsers ...user.User) error {
	query := `SELECT username, email FROM users WHERE (username = $1 OR email = $2)`
	args := []interface{}{username, email}
	if len(excludedUsers) > 0 {
		ids := make([]string, 0, len(excludedUsers))
		for _, u := range excludedUsers {
			ids = append(ids, u.ID)
		}
		inQuery, inArgs, err := sqlx.In(`SELECT username, email FROM users WHERE (username = ? OR email = ?) AND id NOT IN (?)`, username, email, ids)
		if err != nil {
			return errors.Wrap(err, "building uniqueness query")
		}
		query = repo.db.Rebind(inQuery)
		args = inArgs
	}

	var clash struct {
		Username string `db:"username"`
		Email    string `db:"email"`
	}
	err := repo.db.GetContext(ctx, &clash, query, args...)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "checking user uniqueness")
	}
	if clash.Username == username {
		return user.ErrUsernameExists
	}
	return user.ErrEmailExists
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO users (id, name, username, email, avatar, points, badge, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		usr.ID, usr.Name, usr.Username, usr.Email, usr.Avatar, usr.Points, usr.Badge, usr.IsActive,
		usr.CreatedAt.UTC(), usr.UpdatedAt.UTC(),
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var row userRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, "getting user by id")
	}
	return row.toUser(), nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var row userRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return user.User{}, trapNoRowsErr(err, "getting user by email")
	}
	return row.toUser(), nil
}

func (repo *userRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	_, err := repo.db.ExecContext(ctx, `UPDATE users SET last_active = $1 WHERE id = $2`, at.UTC(), id)
	return errors.Wrap(err, "touching last_active")
}
