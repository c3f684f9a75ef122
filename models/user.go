// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SignupRequest is the body for POST /api/users/signup
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the body for PUT /api/users/update. Email
// identifies the account, NewEmail is the replacement address.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	NewEmail string `json:"newEmail" validate:"required"`
}

// UpdatePasswordRequest is the body for PUT /api/users/update-password
type UpdatePasswordRequest struct {
	Email              string `json:"email" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required"`
	NewConfirmPassword string `json:"newConfirmPassword" validate:"required"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// ErrorResponse is the JSON error body every failure maps to
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for operations that only report an outcome
type MessageResponse struct {
	Message string `json:"message"`
}
