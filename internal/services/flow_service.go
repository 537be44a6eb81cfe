package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

// AIService delegates the two AI computations to an external workflow
// service. CalculateMacros returns the raw text result; the caller parses it
// as nutrition JSON.
type AIService interface {
	Ask(ctx context.Context, question string, profile *models.Profile) (string, error)
	CalculateMacros(ctx context.Context, goals []string, general models.General) (string, error)
}

// LangflowConfig carries the two flow endpoints and the input-slot
// identifiers each flow expects. The keys are opaque and per-deployment.
type LangflowConfig struct {
	AskURL      string
	MacrosURL   string
	QuestionKey string
	ProfileKey  string
	GoalsKey    string
	GeneralKey  string
}

type LangflowService struct {
	cfg        LangflowConfig
	httpClient *http.Client
}

func NewLangflowService(cfg LangflowConfig) *LangflowService {
	return &LangflowService{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
}

type tweak struct {
	InputValue string `json:"input_value"`
}

type runRequest struct {
	Tweaks map[string]tweak `json:"tweaks"`
}

type runResponse struct {
	Outputs []struct {
		Outputs []struct {
			Results struct {
				Message *struct {
					Data *struct {
						Text *string `json:"text"`
					} `json:"data"`
				} `json:"message"`
			} `json:"results"`
		} `json:"outputs"`
	} `json:"outputs"`
}

func (s *LangflowService) Ask(ctx context.Context, question string, profile *models.Profile) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	payload := runRequest{Tweaks: map[string]tweak{
		s.cfg.QuestionKey: {InputValue: question},
		s.cfg.ProfileKey:  {InputValue: string(profileJSON)},
	}}
	return s.run(ctx, s.cfg.AskURL, payload)
}

func (s *LangflowService) CalculateMacros(ctx context.Context, goals []string, general models.General) (string, error) {
	generalJSON, err := json.Marshal(general)
	if err != nil {
		return "", fmt.Errorf("marshal general data: %w", err)
	}

	payload := runRequest{Tweaks: map[string]tweak{
		s.cfg.GoalsKey:   {InputValue: strings.Join(goals, ", ")},
		s.cfg.GeneralKey: {InputValue: string(generalJSON)},
	}}
	return s.run(ctx, s.cfg.MacrosURL, payload)
}

func (s *LangflowService) run(ctx context.Context, url string, payload runRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal flow payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build flow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("flow request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("flow request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	var result runResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("malformed flow response: %w", err)
	}
	return extractText(result)
}

// extractText walks the fixed result path outputs[0].outputs[0].results.
// message.data.text and reports which layer was missing instead of panicking
// on an unexpected shape.
func extractText(result runResponse) (string, error) {
	if len(result.Outputs) == 0 || len(result.Outputs[0].Outputs) == 0 {
		return "", fmt.Errorf("malformed flow response: missing outputs")
	}
	message := result.Outputs[0].Outputs[0].Results.Message
	if message == nil || message.Data == nil || message.Data.Text == nil {
		return "", fmt.Errorf("malformed flow response: missing message text")
	}
	return *message.Data.Text, nil
}
