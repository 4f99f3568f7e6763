package geminisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/gouravgowda/SeniorAI-Redesign/core"
)

// service talks to the Generative Language REST API
// (models/{model}:generateContent).
type service struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  core.Logger
}

var _ core.TextGenerator = (*service)(nil)

func NewService(logger core.Logger) *service {
	conf := core.Conf.Gemini
	return &service{
		baseURL: conf.BaseURL,
		apiKey:  conf.APIKey,
		model:   conf.Model,
		client:  &http.Client{Timeout: conf.Timeout},
		logger:  logger,
	}
}

type (
	generatePart struct {
		Text string `json:"text"`
	}
	generateContent struct {
		Parts []generatePart `json:"parts"`
	}
	generateRequest struct {
		Contents []generateContent `json:"contents"`
	}

	generateCandidate struct {
		Content generateContent `json:"content"`
	}
	generateResponse struct {
		Candidates []generateCandidate `json:"candidates"`
		Error      *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
)

func (svc *service) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "marshalling generate request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", svc.baseURL, svc.model, svc.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "building generate request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling generative language API")
	}
	defer func() { _ = res.Body.Close() }()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading generate response")
	}

	var genRes generateResponse
	if err = json.Unmarshal(resBody, &genRes); err != nil {
		return "", errors.Wrapf(err, "parsing generate response (status %d)", res.StatusCode)
	}
	if res.StatusCode >= http.StatusBadRequest {
		msg := http.StatusText(res.StatusCode)
		if genRes.Error != nil {
			msg = genRes.Error.Message
		}
		svc.logger.Error(fmt.Sprintf("generative language API - status: %d - %s", res.StatusCode, msg))
		return "", errors.Errorf("generative language API: %s", msg)
	}
	if len(genRes.Candidates) == 0 || len(genRes.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generative language API: empty response")
	}
	return genRes.Candidates[0].Content.Parts[0].Text, nil
}
