package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a stored user account. The password is kept only as a
// bcrypt hash and never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Email        string             `bson:"email" json:"email"`
	MobileNo     string             `bson:"mobile_no" json:"mobile_no"`
	Purpose      string             `bson:"purpose,omitempty" json:"purpose,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
