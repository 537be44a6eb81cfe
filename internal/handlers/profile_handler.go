package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/services"
)

type sectionUpdater interface {
	UpdateSection(ctx context.Context, profile *models.Profile, section string, fields interface{}) (*models.Profile, error)
}

type ProfileHandler struct {
	sessions       *SessionManager
	profileService sectionUpdater
}

func NewProfileHandler(sessions *SessionManager, profileService sectionUpdater) *ProfileHandler {
	return &ProfileHandler{
		sessions:       sessions,
		profileService: profileService,
	}
}

type generalRequest struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
}

type goalsRequest struct {
	Goals []string `json:"goals"`
}

type nutritionRequest struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// GetProfile bootstraps the session on first load and returns the current
// profile and notes snapshot.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(fiber.Map{
		"profile": state.Profile,
		"notes":   state.Notes,
	})
}

func (h *ProfileHandler) UpdateGeneral(c *fiber.Ctx) error {
	var req generalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateGeneralRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	profile, err := h.profileService.UpdateSection(c.Context(), state.Profile, services.SectionGeneral, models.General{
		Name:          req.Name,
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save personal data"})
	}
	if err := h.sessions.SaveProfile(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) UpdateGoals(c *fiber.Ctx) error {
	var req goalsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateGoalsRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	profile, err := h.profileService.UpdateSection(c.Context(), state.Profile, services.SectionGoals, req.Goals)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save goals"})
	}
	if err := h.sessions.SaveProfile(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) UpdateNutrition(c *fiber.Ctx) error {
	var req nutritionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateNutritionRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	profile, err := h.profileService.UpdateSection(c.Context(), state.Profile, services.SectionNutrition, models.Nutrition{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save nutrition data"})
	}
	if err := h.sessions.SaveProfile(c, profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}
