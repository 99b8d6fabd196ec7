package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"`
	AuthorID      primitive.ObjectID `json:"author_id" bson:"author_id"`
	DestinationID primitive.ObjectID `json:"destination_id" bson:"destination_id"`
	TravelDate    time.Time          `json:"travel_date" bson:"travel_date"`
	IsPublished   bool               `json:"is_published" bson:"is_published"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// PostDetail bundles a post with the records the detail endpoint joins in.
type PostDetail struct {
	Post        *Post        `json:"post"`
	Author      *UserSummary `json:"author,omitempty"`
	Destination *Destination `json:"destination,omitempty"`
	Comments    []*Comment   `json:"comments"`
}
