package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

const (
	sessionKeyUserID    = "user_id"
	sessionKeyProfileID = "profile_id"
	sessionKeyProfile   = "profile"
	sessionKeyNotes     = "notes"
)

var errInvalidUserID = errors.New("user_id must be an integer")

type profileProvider interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error)
}

type noteLister interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Note, error)
}

type sessionState struct {
	UserID  int64
	Profile *models.Profile
	Notes   []models.Note
}

// SessionManager keeps the per-session snapshot of profile, profile id and
// notes, bootstrapping it from the store on first touch. The user id comes
// from the user_id query parameter once (default 1) and is pinned in the
// session afterwards.
type SessionManager struct {
	store    *session.Store
	profiles profileProvider
	notes    noteLister
}

func NewSessionManager(store *session.Store, profiles profileProvider, notes noteLister) *SessionManager {
	return &SessionManager{
		store:    store,
		profiles: profiles,
		notes:    notes,
	}
}

func (m *SessionManager) State(c *fiber.Ctx) (*sessionState, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	state := &sessionState{}
	dirty := false

	if userID, ok := sess.Get(sessionKeyUserID).(int64); ok {
		state.UserID = userID
	} else {
		userID, err := strconv.ParseInt(c.Query("user_id", "1"), 10, 64)
		if err != nil {
			return nil, errInvalidUserID
		}
		state.UserID = userID
		sess.Set(sessionKeyUserID, userID)
		dirty = true
	}

	if raw, ok := sess.Get(sessionKeyProfile).([]byte); ok {
		var profile models.Profile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("decode session profile: %w", err)
		}
		state.Profile = &profile
	} else {
		profile, err := m.profiles.GetOrCreate(c.Context(), state.UserID)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(profile)
		if err != nil {
			return nil, fmt.Errorf("encode session profile: %w", err)
		}
		sess.Set(sessionKeyProfile, raw)
		sess.Set(sessionKeyProfileID, profile.StorageID.Hex())
		state.Profile = profile
		dirty = true
	}

	if raw, ok := sess.Get(sessionKeyNotes).([]byte); ok {
		if err := json.Unmarshal(raw, &state.Notes); err != nil {
			return nil, fmt.Errorf("decode session notes: %w", err)
		}
	} else {
		notes, err := m.notes.ListByUserID(c.Context(), state.UserID)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(notes)
		if err != nil {
			return nil, fmt.Errorf("encode session notes: %w", err)
		}
		sess.Set(sessionKeyNotes, raw)
		state.Notes = notes
		dirty = true
	}
	if state.Notes == nil {
		state.Notes = []models.Note{}
	}

	if dirty {
		if err := sess.Save(); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}
	return state, nil
}

// SaveProfile writes the profile snapshot back to the session. It does not
// touch the store.
func (m *SessionManager) SaveProfile(c *fiber.Ctx, profile *models.Profile) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode session profile: %w", err)
	}
	sess.Set(sessionKeyProfile, raw)
	sess.Set(sessionKeyProfileID, profile.StorageID.Hex())
	return sess.Save()
}

func (m *SessionManager) SaveNotes(c *fiber.Ctx, notes []models.Note) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode session notes: %w", err)
	}
	sess.Set(sessionKeyNotes, raw)
	return sess.Save()
}

func respondSessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidUserID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
}
