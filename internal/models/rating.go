package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating holds one user's score for one destination. At most one document
// exists per (destination_id, user_id) pair; repeat submissions update it.
type Rating struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DestinationID primitive.ObjectID `json:"destination_id" bson:"destination_id"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id"`
	Score         int                `json:"score" bson:"score"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
