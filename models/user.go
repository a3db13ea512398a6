package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is a registered member. Password holds the salted hash and is never
// serialized to JSON.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string        `json:"email" bson:"email"`
	Name      string        `json:"name" bson:"name"`
	Password  string        `json:"-" bson:"password"`
	Role      string        `json:"role" bson:"role"`
	Bio       string        `json:"bio" bson:"bio"`
	Interests []string      `json:"interests" bson:"interests"`
	IsActive  bool          `json:"isActive" bson:"isActive"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type UserRegistration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate carries the self-service fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	Interests *[]string `json:"interests"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
