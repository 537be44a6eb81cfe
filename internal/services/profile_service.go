package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

const (
	SectionGeneral   = "general"
	SectionGoals     = "goals"
	SectionNutrition = "nutrition"
)

type profileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Create(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateSection(ctx context.Context, storageID primitive.ObjectID, section string, value interface{}) error
}

type ProfileService struct {
	profiles profileStore
}

func NewProfileService(profiles profileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetOrCreate fetches the profile for the given user id, lazily creating it
// with default values on first access.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	return s.profiles.Create(ctx, userID)
}

// UpdateSection replaces one named section of the profile and persists only
// that top-level key. Goals are special-cased: a nil value collapses to an
// empty list rather than an error. The mutated in-memory profile is returned
// without a re-read from storage.
func (s *ProfileService) UpdateSection(ctx context.Context, profile *models.Profile, section string, fields interface{}) (*models.Profile, error) {
	var value interface{}

	switch section {
	case SectionGoals:
		goals, _ := fields.([]string)
		if goals == nil {
			goals = []string{}
		}
		profile.Goals = goals
		value = profile.Goals
	case SectionGeneral:
		general, ok := fields.(models.General)
		if !ok {
			return nil, fmt.Errorf("section %s expects general fields", section)
		}
		profile.General = general
		value = profile.General
	case SectionNutrition:
		nutrition, ok := fields.(models.Nutrition)
		if !ok {
			return nil, fmt.Errorf("section %s expects nutrition fields", section)
		}
		profile.Nutrition = nutrition
		value = profile.Nutrition
	default:
		return nil, fmt.Errorf("unknown profile section %q", section)
	}

	if err := s.profiles.UpdateSection(ctx, profile.StorageID, section, value); err != nil {
		return nil, err
	}
	return profile, nil
}
