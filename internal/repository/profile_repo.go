package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/database"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(database.CollectionPersonalData)}
}

// GetByUserID looks up the profile whose user-facing id matches. An absent
// profile is (nil, nil), not an error.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

// Create inserts a profile with the default values and returns it with the
// store-assigned id filled in.
func (r *ProfileRepository) Create(ctx context.Context, userID int64) (*models.Profile, error) {
	profile := models.DefaultProfile(userID)
	res, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		profile.StorageID = oid
	}
	return profile, nil
}

// UpdateSection writes exactly one top-level key of the document identified
// by the storage id. The rest of the document is left untouched.
func (r *ProfileRepository) UpdateSection(ctx context.Context, storageID primitive.ObjectID, section string, value interface{}) error {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": storageID},
		bson.M{"$set": bson.M{section: value}},
	)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", section, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("profile %s not found", storageID.Hex())
	}
	return nil
}

// Delete removes a profile by storage id. No current workflow calls it, but
// it is part of the data-access contract.
func (r *ProfileRepository) Delete(ctx context.Context, storageID primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": storageID}); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
