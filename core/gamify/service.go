package gamify

import (
	"context"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

const (
	defaultLeaderboardLimit = 100
	defaultActivitiesLimit  = 10
)

type (
	Repository interface {
		// UpdateUserPoints overwrites the user's point total, badge and
		// last_points_update timestamp.
		UpdateUserPoints(ctx context.Context, userID string, points int, badge Badge, at time.Time, exec ...core.DBExecutor) error
		AppendActivity(ctx context.Context, act Activity, exec ...core.DBExecutor) (Activity, error)
		// RecentActivities returns the user's activities ordered by timestamp descending.
		RecentActivities(ctx context.Context, userID string, limit int) ([]Activity, error)
		// RankedUsers returns users with points > 0 ordered by points descending
		// (ties broken by earliest last_points_update, then id). A non-zero
		// `since` restricts the view to users whose last award falls after it.
		RankedUsers(ctx context.Context, since time.Time, limit int) ([]user.User, error)
		CountUsersWithMorePoints(ctx context.Context, points int) (int, error)
	}

	Service struct {
		db      core.DB
		repo    Repository
		usrRepo user.Repository
		mailSvc core.EmailService
	}
)

func NewService(db core.DB, repo Repository, usrRepo user.Repository, mailSvc core.EmailService) *Service {
	return &Service{db: db, repo: repo, usrRepo: usrRepo, mailSvc: mailSvc}
}

// AwardPoints adds points to the user's ledger and appends one activity
// record; both writes run in a single transaction. The amount comes from the
// fixed per-kind table unless customAmount overrides it. Unrecognized kinds
// are rejected.
func (svc *Service) AwardPoints(ctx context.Context, userID string, kind Kind, customAmount *int) (AwardResult, error) {
	if !kind.Known() {
		return AwardResult{}, core.NewValidationError(
			errors.New("unknown activity kind"),
			core.FieldError{Field: "activity", Error: "unknown activity kind: " + string(kind)},
		)
	}

	usr, err := svc.usrRepo.GetUserByID(ctx, userID)
	if err != nil {
		return AwardResult{}, errors.Wrap(err, "getting user")
	}

	amount := kind.Points()
	if customAmount != nil {
		amount = *customAmount
	}

	now := time.Now().UTC()
	newPoints := usr.Points + amount
	prevBadge := ClassifyBadge(usr.Points)
	newBadge := ClassifyBadge(newPoints)

	err = core.Atomic(ctx, svc.db, func(exec core.DBExecutor) error {
		if err := svc.repo.UpdateUserPoints(ctx, usr.ID, newPoints, newBadge, now, exec); err != nil {
			return errors.Wrap(err, "updating user points")
		}
		act := Activity{
			UserID:       usr.ID,
			Kind:         kind,
			PointsEarned: amount,
			Timestamp:    now,
		}
		if _, err := svc.repo.AppendActivity(ctx, act, exec); err != nil {
			return errors.Wrap(err, "appending activity")
		}
		return nil
	})
	if err != nil {
		return AwardResult{}, err
	}

	res := AwardResult{
		PointsAdded:   amount,
		TotalPoints:   newPoints,
		Badge:         newBadge,
		BadgeUpgraded: newBadge != prevBadge,
	}
	if res.BadgeUpgraded {
		svc.sendBadgeUpgradeMail(usr, res)
	}
	return res, nil
}

// UserPoints returns the user's current points and badge.
// Unknown users read as zero points on the BRONZE tier.
func (svc *Service) UserPoints(ctx context.Context, userID string) (PointsSummary, error) {
	usr, err := svc.usrRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return PointsSummary{Points: 0, Badge: BadgeBronze}, nil
		}
		return PointsSummary{}, errors.Wrap(err, "getting user")
	}
	return PointsSummary{Points: usr.Points, Badge: ClassifyBadge(usr.Points)}, nil
}

// Leaderboard returns the top users by points for the timeframe, ranked by
// output position (1-based).
func (svc *Service) Leaderboard(ctx context.Context, timeframe Timeframe, limit int) ([]LeaderboardEntry, error) {
	if timeframe == "" {
		timeframe = TimeframeAll
	}
	if !timeframe.Valid() {
		return nil, core.NewValidationError(
			errors.New("unknown timeframe"),
			core.FieldError{Field: "timeframe", Error: "must be one of: all, monthly, weekly"},
		)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	users, err := svc.repo.RankedUsers(ctx, timeframe.Since(time.Now().UTC()), limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying ranked users")
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, usr := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   usr.ID,
			Username: usr.DisplayName(),
			Points:   usr.Points,
			Badge:    ClassifyBadge(usr.Points),
			Avatar:   usr.Avatar,
		})
	}
	return entries, nil
}

// UserRank computes the user's 1-based rank as the count of users with
// strictly more points, plus one. Unknown users get a nil rank.
func (svc *Service) UserRank(ctx context.Context, userID string) (RankResult, error) {
	usr, err := svc.usrRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return RankResult{Rank: nil, TotalPoints: 0, Badge: BadgeBronze}, nil
		}
		return RankResult{}, errors.Wrap(err, "getting user")
	}

	higher, err := svc.repo.CountUsersWithMorePoints(ctx, usr.Points)
	if err != nil {
		return RankResult{}, errors.Wrap(err, "counting higher-ranked users")
	}
	rank := higher + 1
	return RankResult{Rank: &rank, TotalPoints: usr.Points, Badge: ClassifyBadge(usr.Points)}, nil
}

// RecentActivities returns the user's latest activity records, most recent first.
func (svc *Service) RecentActivities(ctx context.Context, userID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = defaultActivitiesLimit
	}
	acts, err := svc.repo.RecentActivities(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying activities")
	}
	if acts == nil {
		acts = []Activity{}
	}
	return acts, nil
}

func (svc *Service) sendBadgeUpgradeMail(usr user.User, res AwardResult) {
	if svc.mailSvc == nil || usr.Email == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "You earned the " + res.Badge.String() + " badge!",
		TemplateName: "badge_upgrade",
		TemplateData: struct {
			User   user.User
			Result AwardResult
		}{usr, res},
	})
}
