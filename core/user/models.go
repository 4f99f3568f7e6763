package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
)

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Avatar           string    `json:"avatar,omitempty"`
	Points           int       `json:"points"`
	Badge            string    `json:"badge"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`         // UTC
	UpdatedAt        time.Time `json:"updated_at"`         // UTC
	LastActive       time.Time `json:"last_active"`        // UTC
	LastPointsUpdate time.Time `json:"last_points_update"` // UTC
}

// DisplayName is the name shown on public views such as the leaderboard.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Name != "" {
		return u.Name
	}
	return "Anonymous"
}

// NewUser contains information needed to create a new User.
// Records are created by the registration webhook; identity itself is
// delegated to the external auth provider.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"omitempty,min=3,alphanum_"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Username = core.CleanString(nu.Username, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	if nu.Username == "" {
		// default to the email local part
		nu.Username = sanitizeUsername(strings.SplitN(nu.Email, "@", 2)[0])
	}
	return svc.checkUniqueness(nu.Username, nu.Email)
}

// sanitizeUsername keeps only alphanumeric characters and underscores.
func sanitizeUsername(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		default:
			return '_'
		}
	}, s)
}
