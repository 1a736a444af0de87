package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteModel mirrors a document in the 'notes' collection. UserID carries the
// owner's ID in hex form and appears in every query filter on this collection.
type NoteModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
