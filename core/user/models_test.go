package user_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
	"github.com/gouravgowda/SeniorAI-Redesign/services/email"
	"github.com/gouravgowda/SeniorAI-Redesign/storage/database/inmem"
)

func setup(t *testing.T) *user.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	return user.NewService(inmemdb.NewUserRepository(db), emailsvc.NewConsoleServiceMock())
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v; want ValidationError", err)
	}
	assert.Equal(t, field, vErr.Fields[0].Field)
}

func Test_NewUser_Validate(t *testing.T) {
	svc := setup(t)

	t.Run("required fields", func(t *testing.T) {
		nu := user.NewUser{}
		assert.Error(t, nu.Validate(core.Validate, svc))
	})

	t.Run("bad email", func(t *testing.T) {
		nu := user.NewUser{Name: "Jane", Email: "not-an-email"}
		assert.Error(t, nu.Validate(core.Validate, svc))
	})

	t.Run("username defaults to sanitized email local part", func(t *testing.T) {
		nu := user.NewUser{Name: "Jane Doe", Email: "Jane.Doe+x@Test.CD"}
		assert.NoError(t, nu.Validate(core.Validate, svc))
		assert.Equal(t, "jane_doe_x", nu.Username)
		assert.Equal(t, "jane.doe+x@test.cd", nu.Email)
	})

	t.Run("explicit username is kept", func(t *testing.T) {
		nu := user.NewUser{Name: "Jane", Email: "jane2@test.cd", Username: "JDoe_42"}
		assert.NoError(t, nu.Validate(core.Validate, svc))
		assert.Equal(t, "jdoe_42", nu.Username)
	})

	t.Run("short username is rejected", func(t *testing.T) {
		nu := user.NewUser{Name: "Jane", Email: "jane3@test.cd", Username: "jd"}
		assert.Error(t, nu.Validate(core.Validate, svc))
	})

	t.Run("duplicates are rejected", func(t *testing.T) {
		ctx := context.Background()
		nu := user.NewUser{Name: "Jane", Email: "dup@test.cd", Username: "dupuser"}
		assert.NoError(t, nu.Validate(core.Validate, svc))
		_, err := svc.Create(ctx, nu)
		assert.NoError(t, err)

		again := user.NewUser{Name: "Janet", Email: "other@test.cd", Username: "dupuser"}
		assertFieldError(t, again.Validate(core.Validate, svc), "username")

		again = user.NewUser{Name: "Janet", Email: "dup@test.cd", Username: "janet"}
		assertFieldError(t, again.Validate(core.Validate, svc), "email")
	})
}

func Test_Service_Create(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	nu := user.NewUser{Name: "Jane", Email: "jane@test.cd"}
	assert.NoError(t, nu.Validate(core.Validate, svc))

	usr, err := svc.Create(ctx, nu)
	assert.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, "BRONZE", usr.Badge)
	assert.True(t, usr.IsActive)
	assert.Equal(t, 0, usr.Points)
	assert.False(t, usr.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, usr.ID)
	assert.NoError(t, err)
	assert.Equal(t, usr, got)

	got, err = svc.GetByEmail(ctx, " Jane@Test.CD ")
	assert.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)
}

func Test_User_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		usr  user.User
		want string
	}{
		{"username wins", user.User{Username: "jdoe", Name: "Jane Doe"}, "jdoe"},
		{"falls back to name", user.User{Name: "Jane Doe"}, "Jane Doe"},
		{"anonymous", user.User{}, "Anonymous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.usr.DisplayName())
		})
	}
}
