package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/config"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/handlers"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/repository"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *mongo.Database) {
	profileRepo := repository.NewProfileRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	profileService := services.NewProfileService(profileRepo)

	var aiService services.AIService
	if cfg.AskAIURL != "" && cfg.CalculateMacrosURL != "" {
		aiService = services.NewLangflowService(services.LangflowConfig{
			AskURL:      cfg.AskAIURL,
			MacrosURL:   cfg.CalculateMacrosURL,
			QuestionKey: cfg.AskAIQuestionKey,
			ProfileKey:  cfg.AskAIProfileKey,
			GoalsKey:    cfg.MacrosGoalsKey,
			GeneralKey:  cfg.MacrosGeneralKey,
		})
	}

	sessionStore := session.New()
	sessions := handlers.NewSessionManager(sessionStore, profileService, noteRepo)
	profileHandler := handlers.NewProfileHandler(sessions, profileService)
	noteHandler := handlers.NewNoteHandler(sessions, noteRepo)
	aiHandler := handlers.NewAIHandler(sessions, aiService)

	api := app.Group("/api")

	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile/general", profileHandler.UpdateGeneral)
	api.Put("/profile/goals", profileHandler.UpdateGoals)
	api.Put("/profile/nutrition", profileHandler.UpdateNutrition)

	api.Get("/notes", noteHandler.ListNotes)
	api.Post("/notes", noteHandler.AddNote)
	api.Delete("/notes/:id", noteHandler.DeleteNote)

	api.Post("/ai/ask", aiHandler.Ask)
	api.Post("/ai/macros", aiHandler.GenerateMacros)
}
