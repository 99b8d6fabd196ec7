package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleEditor UserRole = "editor"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Password        string             `json:"-" bson:"password"`
	DisplayName     string             `json:"display_name" bson:"display_name"`
	Bio             string             `json:"bio" bson:"bio"`
	ProfilePhotoURL string             `json:"profile_photo_url" bson:"profile_photo_url"`
	Role            UserRole           `json:"role" bson:"role"`
	IsBlocked       bool               `json:"is_blocked" bson:"is_blocked"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// UserSummary is the public projection returned by registration and admin listings.
type UserSummary struct {
	ID          primitive.ObjectID `json:"id"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name"`
	Role        UserRole           `json:"role"`
	IsBlocked   bool               `json:"is_blocked"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsBlocked:   u.IsBlocked,
		CreatedAt:   u.CreatedAt,
	}
}
