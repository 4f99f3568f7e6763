package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/gouravgowda/SeniorAI-Redesign/apps/api/echo"
	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/content"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
	emailsvc "github.com/gouravgowda/SeniorAI-Redesign/services/email"
	geminisvc "github.com/gouravgowda/SeniorAI-Redesign/services/gemini"
	logsvc "github.com/gouravgowda/SeniorAI-Redesign/services/logger"
	"github.com/gouravgowda/SeniorAI-Redesign/storage/database"
	sqlxrepos "github.com/gouravgowda/SeniorAI-Redesign/storage/database/sqlx"
)

const shutdownTimeout = 20 * time.Second

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(std, err)
	defer func() { _ = db.Close() }()
	dbx := sqlx.NewDb(db, core.Conf.Database.Engine)

	// set up repos
	usrRepo := sqlxrepos.NewUserRepository(dbx)
	gamifyRepo := sqlxrepos.NewGamifyRepository(dbx)
	progressRepo := sqlxrepos.NewProgressRepository(dbx)
	resourceRepo := sqlxrepos.NewResourceRepository(dbx)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(usrRepo, mailSvc)
	gamifySvc := gamify.NewService(db, gamifyRepo, usrRepo, mailSvc)
	progressSvc := progress.NewService(progressRepo, usrRepo)
	contentSvc := content.NewService(geminisvc.NewService(logger))
	resourceSvc := resource.NewService(resourceRepo)

	// start API server
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Address:  core.Conf.Server.Address(),
			Shutdown: func() { shutdownCh <- syscall.SIGTERM },
		},
		&echoapi.Deps{
			Logger:      logger,
			UserSvc:     usrSvc,
			GamifySvc:   gamifySvc,
			ProgressSvc: progressSvc,
			ContentSvc:  contentSvc,
			ResourceSvc: resourceSvc,
		},
	)
	go app.Start()

	<-shutdownCh
	std.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		std.Printf("graceful shutdown failed: %v", err)
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
