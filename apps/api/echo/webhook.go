package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type webhookApi struct {
	svc *user.Service
}

// registerWebhookAPI exposes the registration hook called by the identity
// provider after signup; it creates the user record and triggers the
// welcome email.
func registerWebhookAPI(g *echo.Group, svc *user.Service) {
	api := webhookApi{svc: svc}

	g.POST("/webhook/register", api.register)
}

type RegisterResponse struct {
	Success bool      `json:"success"`
	User    user.User `json:"user"`
}

func (api *webhookApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(core.Validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, RegisterResponse{Success: true, User: usr})
}
