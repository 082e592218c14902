// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role names for users.
const (
	RoleUser      = "user"
	RolePublisher = "publisher"
	RoleAdmin     = "admin"
)

// User represents a user in the system.
type User struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                string             `json:"name" bson:"name" example:"John Doe"`
	Email               string             `json:"email" bson:"email" example:"user@example.com"`
	Role                string             `json:"role" bson:"role" example:"publisher"`
	Password            string             `json:"-" bson:"password"` // "-" = never include in JSON response
	ResetPasswordToken  string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpire *time.Time         `json:"-" bson:"resetPasswordExpire,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for registering a user.
// Role is restricted to the self-assignable roles; admins are seeded only.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=user publisher" example:"publisher"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse is the body returned whenever a session is issued.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// UpdateDetailsRequest is the payload for updating the current user's profile.
type UpdateDetailsRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1" example:"Jane Doe"`
	Email *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
}

// UpdatePasswordRequest is the payload for changing the current user's password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=8" example:"evenmoresecret"`
}

// ForgotPasswordRequest is the payload for requesting a password reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest is the payload for completing a password reset.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8" example:"newsecret123"`
}

// CreateUserRequest is the payload for the admin user-management endpoint.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=user publisher admin" example:"user"`
}

// UpdateUserRequest is the payload for the admin user-management endpoint.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1" example:"Jane Doe"`
	Email *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	Role  *string `json:"role" binding:"omitempty,oneof=user publisher admin" example:"publisher"`
}
