package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash []byte             `bson:"password_hash" json:"-"`
	IsStaff      bool               `bson:"is_staff" json:"is_staff"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
