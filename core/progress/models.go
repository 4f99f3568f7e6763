package progress

import "time"

// Step is one per-user roadmap step completion flag. Seq is a stable,
// per-user sequence number assigned the first time a step is recorded; the
// "next recommended step" is the lowest-seq incomplete step.
type Step struct {
	StepID    string    `json:"stepId"`
	Completed bool      `json:"completed"`
	Seq       int       `json:"seq"`
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// Report summarizes a user's roadmap progress after a save.
type Report struct {
	TotalProgress       float64 `json:"totalProgress"` // fraction in [0,1]
	CompletedSteps      int     `json:"completedSteps"`
	TotalSteps          int     `json:"totalSteps"`
	NextRecommendedStep *string `json:"nextRecommendedStep"`
}
