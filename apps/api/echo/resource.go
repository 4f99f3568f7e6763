package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
)

type resourceApi struct {
	svc *resource.Service
}

func registerResourceAPI(g *echo.Group, svc *resource.Service) {
	api := resourceApi{svc: svc}

	g.GET("/resources/:domainId", api.forDomain)
}

func (api *resourceApi) forDomain(ctx echo.Context) error {
	grouped, err := api.svc.ForDomain(ctx.Request().Context(), ctx.Param("domainId"))
	if err != nil {
		return errors.Wrap(err, "getting resources")
	}
	return ctx.JSON(http.StatusOK, grouped)
}
