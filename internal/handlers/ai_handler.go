package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/services"
)

type AIHandler struct {
	sessions *SessionManager
	ai       services.AIService
}

func NewAIHandler(sessions *SessionManager, ai services.AIService) *AIHandler {
	return &AIHandler{
		sessions: sessions,
		ai:       ai,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

func (h *AIHandler) Ask(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}

	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question is required"})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	answer, err := h.ai.Ask(c.Context(), req.Question, state.Profile)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI request failed"})
	}

	return c.JSON(fiber.Map{"answer": answer})
}

// GenerateMacros asks the workflow service for macros based on the session
// profile and merges the result into the session snapshot only. The store is
// untouched until the user explicitly saves nutrition.
func (h *AIHandler) GenerateMacros(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	result, err := h.ai.CalculateMacros(c.Context(), state.Profile.Goals, state.Profile.General)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI request failed"})
	}

	var nutrition models.Nutrition
	if err := json.Unmarshal([]byte(result), &nutrition); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI returned malformed macros"})
	}

	state.Profile.Nutrition = nutrition
	if err := h.sessions.SaveProfile(c, state.Profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{"profile": state.Profile})
}
