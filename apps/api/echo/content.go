package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/content"
)

type contentApi struct {
	svc *content.Service
}

func registerContentAPI(g *echo.Group, svc *content.Service) {
	api := contentApi{svc: svc}

	g.POST("/mentor/chat", api.mentorChat)
	g.POST("/roadmap/generate", api.generateRoadmap)
	g.POST("/domain/recommend", api.recommendDomain)
	g.POST("/projects/suggest", api.suggestProjects)
}

type MentorChatRequest struct {
	Message string                `json:"message" validate:"required"`
	History []content.ChatMessage `json:"history"`
	Context content.UserContext   `json:"context"`
}

func (r MentorChatRequest) Validate() error { return core.Validate.Struct(r) }

type GenerateRoadmapRequest struct {
	Domain string `json:"domain" validate:"required"`
	Level  string `json:"level"`
}

func (r GenerateRoadmapRequest) Validate() error { return core.Validate.Struct(r) }

type RecommendDomainRequest struct {
	QuizAnswers []content.QuizAnswer `json:"quizAnswers" validate:"required,min=1,dive"`
}

func (r RecommendDomainRequest) Validate() error { return core.Validate.Struct(r) }

type SuggestProjectsRequest struct {
	Domain string `json:"domain" validate:"required"`
	Level  string `json:"level"`
}

func (r SuggestProjectsRequest) Validate() error { return core.Validate.Struct(r) }

// Handlers

func (api *contentApi) mentorChat(ctx echo.Context) error {
	var data MentorChatRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MentorChatRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	reply, err := api.svc.MentorChat(ctx.Request().Context(), data.Message, data.History, data.Context)
	if err != nil {
		return errors.Wrap(err, "chatting with mentor")
	}
	return ctx.JSON(http.StatusOK, reply)
}

func (api *contentApi) generateRoadmap(ctx echo.Context) error {
	var data GenerateRoadmapRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRoadmapRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	roadmap, err := api.svc.GenerateRoadmap(ctx.Request().Context(), data.Domain, data.Level)
	if err != nil {
		return errors.Wrap(err, "generating roadmap")
	}
	return ctx.JSON(http.StatusOK, roadmap)
}

func (api *contentApi) recommendDomain(ctx echo.Context) error {
	var data RecommendDomainRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecommendDomainRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	recs, err := api.svc.RecommendDomain(ctx.Request().Context(), data.QuizAnswers)
	if err != nil {
		return errors.Wrap(err, "recommending domain")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *contentApi) suggestProjects(ctx echo.Context) error {
	var data SuggestProjectsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SuggestProjectsRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sug, err := api.svc.SuggestProjects(ctx.Request().Context(), data.Domain, data.Level)
	if err != nil {
		return errors.Wrap(err, "suggesting projects")
	}
	return ctx.JSON(http.StatusOK, sug)
}
