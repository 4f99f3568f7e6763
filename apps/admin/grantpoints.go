package main

import (
	"context"

	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
)

// grantPoints awards points to a user manually, e.g. for contest prizes.
func (cli *commandLine) grantPoints(userID, activity string, amount *int) error {
	res, err := cli.gamifySvc.AwardPoints(context.Background(), userID, gamify.Kind(activity), amount)
	if err != nil {
		return err
	}
	logger.Printf("awarded %d points to %s (total: %d, badge: %s)", res.PointsAdded, userID, res.TotalPoints, res.Badge)
	return nil
}
