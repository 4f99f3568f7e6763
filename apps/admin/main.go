package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
	emailsvc "github.com/gouravgowda/SeniorAI-Redesign/services/email"
	"github.com/gouravgowda/SeniorAI-Redesign/storage/database"
	sqlxrepos "github.com/gouravgowda/SeniorAI-Redesign/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	errAndDie(database.CreateIfNotExist(core.Conf))
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())
	dbx := sqlx.NewDb(db, core.Conf.Database.Engine)

	usrRepo := sqlxrepos.NewUserRepository(dbx)

	// start CLI
	cli := commandLine{
		db:          db,
		resourceSvc: resource.NewService(sqlxrepos.NewResourceRepository(dbx)),
		gamifySvc:   gamify.NewService(db, sqlxrepos.NewGamifyRepository(dbx), usrRepo, emailsvc.NewConsoleService()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
