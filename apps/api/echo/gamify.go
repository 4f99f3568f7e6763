package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
)

type gamifyApi struct {
	svc *gamify.Service
}

func registerGamifyAPI(g *echo.Group, svc *gamify.Service) {
	api := gamifyApi{svc: svc}

	g.POST("/user/points", api.awardPoints)
	g.GET("/user/:userId/points", api.userPoints)
	g.GET("/user/:userId/rank", api.userRank)
	g.GET("/user/:userId/activities", api.userActivities)
	g.GET("/leaderboard", api.leaderboard)
}

type AwardPointsRequest struct {
	UserID       string `json:"userId" validate:"required"`
	Activity     string `json:"activity" validate:"required"`
	CustomAmount *int   `json:"customAmount"`
}

func (r AwardPointsRequest) Validate() error { return core.Validate.Struct(r) }

type AwardPointsResponse struct {
	Success bool `json:"success"`
	gamify.AwardResult
}

// Handlers

func (api *gamifyApi) awardPoints(ctx echo.Context) error {
	var data AwardPointsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AwardPointsRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res, err := api.svc.AwardPoints(ctx.Request().Context(), data.UserID, gamify.Kind(data.Activity), data.CustomAmount)
	if err != nil {
		return errors.Wrap(err, "awarding points")
	}
	return ctx.JSON(http.StatusOK, AwardPointsResponse{Success: true, AwardResult: res})
}

func (api *gamifyApi) userPoints(ctx echo.Context) error {
	sum, err := api.svc.UserPoints(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return errors.Wrap(err, "getting user points")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *gamifyApi) userRank(ctx echo.Context) error {
	rank, err := api.svc.UserRank(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return errors.Wrap(err, "getting user rank")
	}
	return ctx.JSON(http.StatusOK, rank)
}

func (api *gamifyApi) userActivities(ctx echo.Context) error {
	limit := intQueryParam(ctx, "limit")
	acts, err := api.svc.RecentActivities(ctx.Request().Context(), ctx.Param("userId"), limit)
	if err != nil {
		return errors.Wrap(err, "getting user activities")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"activities": acts})
}

func (api *gamifyApi) leaderboard(ctx echo.Context) error {
	timeframe := gamify.Timeframe(ctx.QueryParam("timeframe"))
	limit := intQueryParam(ctx, "limit")

	entries, err := api.svc.Leaderboard(ctx.Request().Context(), timeframe, limit)
	if err != nil {
		return errors.Wrap(err, "getting leaderboard")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"leaderboard": entries})
}

// intQueryParam parses an integer query param; 0 when absent or malformed.
func intQueryParam(ctx echo.Context, name string) int {
	val, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return val
}
