package content

// QuizAnswer is one answered question from the domain discovery quiz.
type QuizAnswer struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type DomainRecommendation struct {
	Domain       string   `json:"domain"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	CareerPaths  []string `json:"careerPaths"`
	MarketDemand string   `json:"marketDemand"`
}

type DomainRecommendations struct {
	Recommendations []DomainRecommendation `json:"recommendations"`
}

type StepResource struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

type RoadmapStep struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Level          string         `json:"level"`
	Description    string         `json:"description"`
	Skills         []string       `json:"skills"`
	EstimatedTime  string         `json:"estimatedTime"`
	Resources      []StepResource `json:"resources"`
	PracticalTasks []string       `json:"practicalTasks"`
}

type Roadmap struct {
	Roadmap            []RoadmapStep `json:"roadmap"`
	TotalEstimatedTime string        `json:"totalEstimatedTime"`
}

type ProjectIdea struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	EstimatedTime string   `json:"estimatedTime"`
	Difficulty    string   `json:"difficulty"`
	GithubTips    []string `json:"githubTips"`
}

type PortfolioAdvice struct {
	MustHaveProjects        int      `json:"mustHaveProjects"`
	RecommendedTechnologies []string `json:"recommendedTechnologies"`
	GithubProfileTips       []string `json:"githubProfileTips"`
	ResumeHighlights        []string `json:"resumeHighlights"`
}

type ProjectSuggestions struct {
	Projects        []ProjectIdea   `json:"projects"`
	PortfolioAdvice PortfolioAdvice `json:"portfolioAdvice"`
}

// ChatMessage is one turn of the mentor conversation as kept by the client.
type ChatMessage struct {
	Sender  string `json:"sender"` // "user" or "mentor"
	Message string `json:"message"`
}

// UserContext situates the mentor's answer in the student's journey.
type UserContext struct {
	SelectedDomain string `json:"selectedDomain"`
	CurrentStep    string `json:"currentStep"`
}

type MentorReply struct {
	Response           string   `json:"response"`
	SuggestedResources []string `json:"suggestedResources"`
	FollowUpQuestions  []string `json:"followUpQuestions"`
}
