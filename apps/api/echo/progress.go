package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
)

type progressApi struct {
	svc *progress.Service
}

func registerProgressAPI(g *echo.Group, svc *progress.Service) {
	api := progressApi{svc: svc}

	g.POST("/user/progress", api.saveProgress)
	g.GET("/user/:userId/progress", api.userProgress)
}

type SaveProgressRequest struct {
	UserID    string `json:"userId" validate:"required"`
	StepID    string `json:"stepId" validate:"required"`
	Completed *bool  `json:"completed" validate:"required"`
}

func (r SaveProgressRequest) Validate() error { return core.Validate.Struct(r) }

type SaveProgressResponse struct {
	Success bool `json:"success"`
	progress.Report
}

// Handlers

func (api *progressApi) saveProgress(ctx echo.Context) error {
	var data SaveProgressRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveProgressRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rep, err := api.svc.Save(ctx.Request().Context(), data.UserID, data.StepID, *data.Completed)
	if err != nil {
		return errors.Wrap(err, "saving progress")
	}
	return ctx.JSON(http.StatusOK, SaveProgressResponse{Success: true, Report: rep})
}

func (api *progressApi) userProgress(ctx echo.Context) error {
	rep, err := api.svc.Summary(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return errors.Wrap(err, "getting progress summary")
	}
	return ctx.JSON(http.StatusOK, rep)
}
