package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Destination struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Country          string             `json:"country" bson:"country"`
	Description      string             `json:"description" bson:"description"`
	CreatedBy        primitive.ObjectID `json:"created_by" bson:"created_by"`
	AverageRating    float64            `json:"average_rating" bson:"average_rating"`
	ImageURL         string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ImageAttribution string             `json:"image_attribution,omitempty" bson:"image_attribution,omitempty"`
	Latitude         *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}
