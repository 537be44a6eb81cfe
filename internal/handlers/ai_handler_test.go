package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

type stubAIService struct {
	askResult    string
	askErr       error
	macrosResult string
	macrosErr    error

	lastQuestion string
	lastProfile  *models.Profile
	lastGoals    []string
	lastGeneral  models.General
}

func (s *stubAIService) Ask(_ context.Context, question string, profile *models.Profile) (string, error) {
	s.lastQuestion = question
	s.lastProfile = profile
	return s.askResult, s.askErr
}

func (s *stubAIService) CalculateMacros(_ context.Context, goals []string, general models.General) (string, error) {
	s.lastGoals = goals
	s.lastGeneral = general
	return s.macrosResult, s.macrosErr
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	ai := &stubAIService{}
	handler := NewAIHandler(newTestSessions(&stubProfileProvider{profile: sessionProfile()}, &stubNoteLister{}), ai)

	app := fiber.New()
	app.Post("/api/ai/ask", handler.Ask)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/ai/ask", askRequest{Question: ""}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAskReturnsAnswer(t *testing.T) {
	ai := &stubAIService{askResult: "Eat protein."}
	handler := NewAIHandler(newTestSessions(&stubProfileProvider{profile: sessionProfile()}, &stubNoteLister{}), ai)

	app := fiber.New()
	app.Post("/api/ai/ask", handler.Ask)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/ai/ask", askRequest{Question: "What should I eat?"}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ai.lastQuestion != "What should I eat?" {
		t.Fatalf("expected the question forwarded, got %q", ai.lastQuestion)
	}
	if ai.lastProfile == nil {
		t.Fatalf("expected the session profile forwarded")
	}

	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.Answer != "Eat protein." {
		t.Fatalf("expected the AI answer, got %q", payload.Answer)
	}
}

func TestAskReportsAIFailure(t *testing.T) {
	ai := &stubAIService{askErr: errors.New("connection refused")}
	handler := NewAIHandler(newTestSessions(&stubProfileProvider{profile: sessionProfile()}, &stubNoteLister{}), ai)

	app := fiber.New()
	app.Post("/api/ai/ask", handler.Ask)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/ai/ask", askRequest{Question: "hi"}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.Error != "AI request failed" {
		t.Fatalf("expected a user-visible failure message, got %q", payload.Error)
	}
}

func TestAskWithoutConfiguredService(t *testing.T) {
	handler := NewAIHandler(newTestSessions(&stubProfileProvider{profile: sessionProfile()}, &stubNoteLister{}), nil)

	app := fiber.New()
	app.Post("/api/ai/ask", handler.Ask)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/ai/ask", askRequest{Question: "hi"}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestGenerateMacrosMergesIntoSessionWithoutPersisting(t *testing.T) {
	provider := &stubProfileProvider{profile: sessionProfile()}
	ai := &stubAIService{macrosResult: `{"calories":2200,"protein":160,"carbs":220,"fats":65}`}
	sessions := newTestSessions(provider, &stubNoteLister{})
	aiHandler := NewAIHandler(sessions, ai)
	profileHandler := NewProfileHandler(sessions, &stubSectionUpdater{})

	app := fiber.New()
	app.Get("/api/profile", profileHandler.GetProfile)
	app.Post("/api/ai/macros", aiHandler.GenerateMacros)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/ai/macros", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(ai.lastGoals) != 1 || ai.lastGoals[0] != "Muscle Gain" {
		t.Fatalf("expected the session goals forwarded, got %v", ai.lastGoals)
	}
	if ai.lastGeneral.Age != 30 {
		t.Fatalf("expected the session general data forwarded, got %+v", ai.lastGeneral)
	}

	var payload struct {
		Profile models.Profile `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := models.Nutrition{Calories: 2200, Protein: 160, Carbs: 220, Fats: 65}
	if payload.Profile.Nutrition != want {
		t.Fatalf("expected merged nutrition %+v, got %+v", want, payload.Profile.Nutrition)
	}

	// The merge lives in the session only: a follow-up request on the same
	// session sees it without another store read.
	follow := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	for _, cookie := range resp.Cookies() {
		follow.AddCookie(cookie)
	}
	followResp, err := app.Test(follow)
	if err != nil {
		t.Fatalf("app.Test follow-up: %v", err)
	}
	defer followResp.Body.Close()

	var followPayload struct {
		Profile models.Profile `json:"profile"`
	}
	if err := json.NewDecoder(followResp.Body).Decode(&followPayload); err != nil {
		t.Fatalf("Decode follow-up: %v", err)
	}
	if followPayload.Profile.Nutrition != want {
		t.Fatalf("expected the merged nutrition in the session, got %+v", followPayload.Profile.Nutrition)
	}
	if provider.calls != 1 {
		t.Fatalf("expected a single profile bootstrap, got %d", provider.calls)
	}
}

func TestGenerateMacrosReportsMalformedResult(t *testing.T) {
	ai := &stubAIService{macrosResult: "sorry, I cannot help with that"}
	handler := NewAIHandler(newTestSessions(&stubProfileProvider{profile: sessionProfile()}, &stubNoteLister{}), ai)

	app := fiber.New()
	app.Post("/api/ai/macros", handler.GenerateMacros)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/ai/macros", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
