package content

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
)

const defaultLevel = "Beginner"

var (
	ErrNoJSONInResponse = errors.New("no JSON object found in model response")

	// first {...} blob in the model's text output
	jsonBlobRegex = regexp.MustCompile(`(?s)\{.*\}`)
)

// Service builds prompts for the generative-language-model API and parses
// the JSON blobs embedded in its text responses.
type Service struct {
	gen core.TextGenerator
}

func NewService(gen core.TextGenerator) *Service {
	return &Service{gen: gen}
}

// RecommendDomain analyzes quiz answers and returns the top recommended
// technical domains.
func (svc *Service) RecommendDomain(ctx context.Context, answers []QuizAnswer) (DomainRecommendations, error) {
	var recs DomainRecommendations
	if err := svc.generateJSON(ctx, domainRecommendationPrompt(answers), &recs); err != nil {
		return DomainRecommendations{}, errors.Wrap(err, "recommending domain")
	}
	return recs, nil
}

// GenerateRoadmap produces a structured learning roadmap for the domain.
func (svc *Service) GenerateRoadmap(ctx context.Context, domain, level string) (Roadmap, error) {
	if level == "" {
		level = defaultLevel
	}
	var rm Roadmap
	if err := svc.generateJSON(ctx, roadmapPrompt(domain, level), &rm); err != nil {
		return Roadmap{}, errors.Wrap(err, "generating roadmap")
	}
	return rm, nil
}

// SuggestProjects produces portfolio project ideas for the domain and level.
func (svc *Service) SuggestProjects(ctx context.Context, domain, level string) (ProjectSuggestions, error) {
	if level == "" {
		level = defaultLevel
	}
	var sug ProjectSuggestions
	if err := svc.generateJSON(ctx, projectSuggestionPrompt(domain, level), &sug); err != nil {
		return ProjectSuggestions{}, errors.Wrap(err, "suggesting projects")
	}
	return sug, nil
}

// MentorChat answers one student question; the reply is plain markdown text.
func (svc *Service) MentorChat(ctx context.Context, message string, history []ChatMessage, userCtx UserContext) (MentorReply, error) {
	text, err := svc.gen.GenerateText(ctx, mentorPrompt(message, history, userCtx))
	if err != nil {
		return MentorReply{}, errors.Wrap(err, "chatting with mentor")
	}
	return MentorReply{
		Response:           text,
		SuggestedResources: []string{},
		FollowUpQuestions:  []string{},
	}, nil
}

func (svc *Service) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	text, err := svc.gen.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}
	blob := jsonBlobRegex.FindString(text)
	if blob == "" {
		return ErrNoJSONInResponse
	}
	if err := json.Unmarshal([]byte(blob), out); err != nil {
		return errors.Wrap(err, "parsing model JSON")
	}
	return nil
}
