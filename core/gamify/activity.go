package gamify

import "time"

// Kind identifies why points were awarded.
type Kind string

const (
	KindQuizCompleted        Kind = "QUIZ_COMPLETED"
	KindRoadmapStepCompleted Kind = "ROADMAP_STEP_COMPLETED"
	KindDailyLogin           Kind = "DAILY_LOGIN"
	KindResourceViewed       Kind = "RESOURCE_VIEWED"
	KindProjectCompleted     Kind = "PROJECT_COMPLETED"
	KindMentorChatStarted    Kind = "MENTOR_CHAT_STARTED"
	KindProfileCompleted     Kind = "PROFILE_COMPLETED"
)

// activityPoints is the fixed award per activity kind.
var activityPoints = map[Kind]int{
	KindQuizCompleted:        10,
	KindRoadmapStepCompleted: 25,
	KindDailyLogin:           5,
	KindResourceViewed:       2,
	KindProjectCompleted:     50,
	KindMentorChatStarted:    5,
	KindProfileCompleted:     20,
}

// Known reports whether the kind is a recognized activity.
func (k Kind) Known() bool {
	_, ok := activityPoints[k]
	return ok
}

// Points returns the fixed award for the kind; 0 for unknown kinds.
func (k Kind) Points() int { return activityPoints[k] }

// Activity is an immutable, append-only record of a points award.
type Activity struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Kind         Kind      `json:"activity"`
	PointsEarned int       `json:"pointsEarned"`
	Timestamp    time.Time `json:"timestamp"` // UTC
}
