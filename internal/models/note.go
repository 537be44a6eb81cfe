package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteMetadata struct {
	IngestedAt time.Time `bson:"ingested_at" json:"ingested_at"`
}

// Note is a free-text entry tied to a profile by the user-facing id.
// Vectorize duplicates Text for the store's semantic index and carries no
// separate meaning at this layer.
type Note struct {
	StorageID primitive.ObjectID `bson:"_id,omitempty" json:"storage_id,omitempty"`
	UserID    int64              `bson:"user_id" json:"user_id"`
	Text      string             `bson:"text" json:"text"`
	Vectorize string             `bson:"vectorize" json:"-"`
	Metadata  NoteMetadata       `bson:"metadata" json:"metadata"`
}
