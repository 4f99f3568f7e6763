package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db          *sql.DB
	resourceSvc *resource.Service
	gamifySvc   *gamify.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate [up|up-by-one|down|redo|status|version] - run DB migrations (default: up)")
	fmt.Println("  seedresources -file FILE - load curated resources from a JSON file")
	fmt.Println("  grantpoints -user USER_ID -activity ACTIVITY [-amount POINTS] - award points manually")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seedresources", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "Path to a JSON file holding an array of resources.")

	grantCmd := flag.NewFlagSet("grantpoints", flag.ExitOnError)
	grantUser := grantCmd.String("user", "", "The user's ID.")
	grantActivity := grantCmd.String("activity", "", "The activity kind to record.")
	grantAmount := grantCmd.Int("amount", 0, "Points to award instead of the activity's default.")

	switch args[1] {
	case "migrate":
		cmdArgs := args[2:]
		if len(cmdArgs) == 0 {
			cmdArgs = []string{"up"}
		}
		return cli.migrate(cmdArgs)
	case "seedresources":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seedResources(*seedFile)
	case "grantpoints":
		if err := grantCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *grantUser == "" || *grantActivity == "" {
			grantCmd.Usage()
			return errHelp
		}
		var amount *int
		if *grantAmount > 0 {
			amount = grantAmount
		}
		return cli.grantPoints(*grantUser, *grantActivity, amount)
	default:
		cli.printUsage()
		return errHelp
	}
}
