// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account created on first sign-in. Email is the natural key;
// a unique index on it keeps concurrent registrations from producing
// duplicates. Role is empty for plain students and is set to "instructor"
// or "admin" by an admin.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
