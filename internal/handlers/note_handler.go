package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

type noteStore interface {
	Create(ctx context.Context, userID int64, text string) (*models.Note, error)
	Delete(ctx context.Context, storageID primitive.ObjectID) error
}

type NoteHandler struct {
	sessions *SessionManager
	notes    noteStore
}

func NewNoteHandler(sessions *SessionManager, notes noteStore) *NoteHandler {
	return &NoteHandler{
		sessions: sessions,
		notes:    notes,
	}
}

type addNoteRequest struct {
	Text string `json:"text"`
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(fiber.Map{"notes": state.Notes})
}

func (h *NoteHandler) AddNote(c *fiber.Ctx) error {
	var req addNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "note text is required"})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	note, err := h.notes.Create(c.Context(), state.UserID, req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add note"})
	}
	if err := h.sessions.SaveNotes(c, append(state.Notes, *note)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}

// DeleteNote removes a note by its storage id. Deleting an id that no longer
// exists still succeeds.
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	storageID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
	}

	state, err := h.sessions.State(c)
	if err != nil {
		return respondSessionError(c, err)
	}

	if err := h.notes.Delete(c.Context(), storageID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}

	remaining := make([]models.Note, 0, len(state.Notes))
	for _, note := range state.Notes {
		if note.StorageID != storageID {
			remaining = append(remaining, note)
		}
	}
	if err := h.sessions.SaveNotes(c, remaining); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{"deleted": true})
}
