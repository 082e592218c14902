package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPhoto is the sentinel filename used before a photo is uploaded.
const DefaultPhoto = "no-photo.jpg"

// Careers is the fixed set of career tracks a bootcamp can offer.
var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// Location is a GeoJSON point with the geocoded address parts.
type Location struct {
	Type             string    `json:"type" bson:"type" example:"Point"`
	Coordinates      []float64 `json:"coordinates" bson:"coordinates"` // [lng, lat]
	FormattedAddress string    `json:"formattedAddress,omitempty" bson:"formattedAddress,omitempty"`
	Street           string    `json:"street,omitempty" bson:"street,omitempty"`
	City             string    `json:"city,omitempty" bson:"city,omitempty"`
	State            string    `json:"state,omitempty" bson:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty" bson:"country,omitempty"`
}

// Bootcamp represents a published training-program listing.
// The address supplied on create is geocoded into Location and not stored.
type Bootcamp struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name          string             `json:"name" bson:"name" example:"Devworks Bootcamp"`
	Slug          string             `json:"slug" bson:"slug" example:"devworks-bootcamp"`
	Description   string             `json:"description" bson:"description"`
	Website       string             `json:"website,omitempty" bson:"website,omitempty" example:"https://devworks.com"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty" example:"(111) 111-1111"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" example:"enroll@devworks.com"`
	Location      Location           `json:"location" bson:"location"`
	Careers       []string           `json:"careers" bson:"careers" example:"Web Development,UI/UX"`
	AverageRating *float64           `json:"averageRating,omitempty" bson:"averageRating,omitempty" example:"8.5"`
	AverageCost   *int               `json:"averageCost,omitempty" bson:"averageCost,omitempty" example:"10000"`
	Photo         string             `json:"photo" bson:"photo" example:"no-photo.jpg"`
	Housing       bool               `json:"housing" bson:"housing"`
	JobAssistance bool               `json:"jobAssistance" bson:"jobAssistance"`
	JobGuarantee  bool               `json:"jobGuarantee" bson:"jobGuarantee"`
	AcceptGi      bool               `json:"acceptGi" bson:"acceptGi"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UserID        primitive.ObjectID `json:"user" bson:"user" example:"507f1f77bcf86cd799439012"`
}

// BootcampSummary is the subset of bootcamp fields embedded into courses and
// reviews when relation expansion is requested.
type BootcampSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
}

// CreateBootcampRequest is the payload for creating a bootcamp.
type CreateBootcampRequest struct {
	Name          string   `json:"name" binding:"required,max=50" example:"Devworks Bootcamp"`
	Description   string   `json:"description" binding:"required,max=500"`
	Website       string   `json:"website" binding:"omitempty,url" example:"https://devworks.com"`
	Phone         string   `json:"phone" binding:"omitempty,max=20" example:"(111) 111-1111"`
	Email         string   `json:"email" binding:"omitempty,email" example:"enroll@devworks.com"`
	Address       string   `json:"address" binding:"required" example:"233 Bay State Rd Boston MA 02215"`
	Careers       []string `json:"careers" binding:"required,min=1,dive,career"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

// UpdateBootcampRequest is the payload for partially updating a bootcamp.
// Address changes are re-geocoded the same way as on create.
type UpdateBootcampRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=50"`
	Description   *string  `json:"description" binding:"omitempty,max=500"`
	Website       *string  `json:"website" binding:"omitempty,url"`
	Phone         *string  `json:"phone" binding:"omitempty,max=20"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Address       *string  `json:"address" binding:"omitempty"`
	Careers       []string `json:"careers" binding:"omitempty,min=1,dive,career"`
	Housing       *bool    `json:"housing"`
	JobAssistance *bool    `json:"jobAssistance"`
	JobGuarantee  *bool    `json:"jobGuarantee"`
	AcceptGi      *bool    `json:"acceptGi"`
}
