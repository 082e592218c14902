package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a user's review of a bootcamp. At most one review exists
// per (bootcamp, user) pair, enforced by a unique index.
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title      string             `json:"title" bson:"title" example:"Learned a ton"`
	Text       string             `json:"text" bson:"text"`
	Rating     float64            `json:"rating" bson:"rating" example:"8"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	BootcampID primitive.ObjectID `json:"bootcampId" bson:"bootcamp" example:"507f1f77bcf86cd799439012"`
	Bootcamp   *BootcampSummary   `json:"bootcamp,omitempty" bson:"-"`
	UserID     primitive.ObjectID `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
}

// CreateReviewRequest is the payload for creating a review.
type CreateReviewRequest struct {
	Title  string  `json:"title" binding:"required,max=100" example:"Learned a ton"`
	Text   string  `json:"text" binding:"required"`
	Rating float64 `json:"rating" binding:"required,gte=1,lte=10" example:"8"`
}

// UpdateReviewRequest is the payload for partially updating a review.
type UpdateReviewRequest struct {
	Title  *string  `json:"title" binding:"omitempty,max=100"`
	Text   *string  `json:"text" binding:"omitempty,min=1"`
	Rating *float64 `json:"rating" binding:"omitempty,gte=1,lte=10"`
}
