package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/content"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

type (
	// Deps are the services the API surfaces.
	Deps struct {
		Logger      core.Logger
		UserSvc     *user.Service
		GamifySvc   *gamify.Service
		ProgressSvc *progress.Service
		ContentSvc  *content.Service
		ResourceSvc *resource.Service
	}

	Options struct {
		Address        string
		DisableReqLogs bool
		Shutdown       func()
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		deps *Deps
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options, deps *Deps) Server {
	s := &server{
		opts: opts,
		deps: deps,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.CORS())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.opts.Shutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	g := s.app.Group("/api")
	registerGamifyAPI(g, s.deps.GamifySvc)
	registerProgressAPI(g, s.deps.ProgressSvc)
	registerContentAPI(g, s.deps.ContentSvc)
	registerResourceAPI(g, s.deps.ResourceSvc)
	registerWebhookAPI(g, s.deps.UserSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "SeniorAI Backend is running!")
}
