// Package model holds the bson-tagged persistence documents. Mapping between
// these and the domain entities keeps ObjectIDs out of the layers above.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors a document in the 'users' collection. Uniqueness of
// username and email is enforced by unique indexes, not application checks.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"` // bcrypt hash, never plaintext
	CreatedAt time.Time          `bson:"created_at"`
}
