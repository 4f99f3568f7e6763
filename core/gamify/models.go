package gamify

import "time"

// Timeframe scopes the leaderboard query by recency of point awards.
type Timeframe string

const (
	TimeframeAll     Timeframe = "all"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeWeekly  Timeframe = "weekly"
)

// Since returns the cutoff for the timeframe; the zero time means no cutoff.
func (tf Timeframe) Since(now time.Time) time.Time {
	switch tf {
	case TimeframeMonthly:
		return now.AddDate(0, 0, -30)
	case TimeframeWeekly:
		return now.AddDate(0, 0, -7)
	}
	return time.Time{}
}

func (tf Timeframe) Valid() bool {
	switch tf {
	case TimeframeAll, TimeframeMonthly, TimeframeWeekly:
		return true
	}
	return false
}

// AwardResult reports the outcome of a points award.
type AwardResult struct {
	PointsAdded   int   `json:"pointsAdded"`
	TotalPoints   int   `json:"totalPoints"`
	Badge         Badge `json:"badge"`
	BadgeUpgraded bool  `json:"badgeUpgraded"`
}

// PointsSummary is a user's current points and badge tier.
type PointsSummary struct {
	Points int   `json:"points"`
	Badge  Badge `json:"badge"`
}

// LeaderboardEntry is an ephemeral, request-time-computed ranked view of a
// user; Rank is 1-based by output position.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Badge    Badge  `json:"badge"`
	Avatar   string `json:"avatar,omitempty"`
}

// RankResult reports a user's position among all users by points.
// Rank is nil for unknown users.
type RankResult struct {
	Rank        *int  `json:"rank"`
	TotalPoints int   `json:"totalPoints"`
	Badge       Badge `json:"badge"`
}
