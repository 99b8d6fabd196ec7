package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PostID    primitive.ObjectID `json:"post_id" bson:"post_id"`
	AuthorID  primitive.ObjectID `json:"author_id" bson:"author_id"`
	Content   string             `json:"content" bson:"content"`
	IsHidden  bool               `json:"is_hidden" bson:"is_hidden"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
