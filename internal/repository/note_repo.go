package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/database"
	"github.com/AhmedZayed35/008-Multi-Agent-Workout-App-With-RAG/internal/models"
)

type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(database.CollectionNotes)}
}

// ListByUserID returns all notes for the user in store-native order.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, userID int64, text string) (*models.Note, error) {
	note := &models.Note{
		UserID:    userID,
		Text:      text,
		Vectorize: text,
		Metadata: models.NoteMetadata{
			IngestedAt: time.Now().UTC(),
		},
	}
	res, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		note.StorageID = oid
	}
	return note, nil
}

// Delete removes a note by storage id. Deleting an absent note is a no-op,
// matching the store's native delete semantics.
func (r *NoteRepository) Delete(ctx context.Context, storageID primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": storageID}); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
