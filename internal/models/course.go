package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill levels a course can require.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Course represents a course offered by a bootcamp.
// BootcampID always carries the owning bootcamp reference; Bootcamp is only
// set when the caller requested relation expansion.
type Course struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title                string             `json:"title" bson:"title" example:"Full Stack Web Development"`
	Description          string             `json:"description" bson:"description"`
	Weeks                int                `json:"weeks" bson:"weeks" example:"12"`
	Tuition              float64            `json:"tuition" bson:"tuition" example:"10000"`
	MinimumSkill         string             `json:"minimumSkill" bson:"minimumSkill" example:"beginner"`
	ScholarshipAvailable bool               `json:"scholarshipAvailable" bson:"scholarshipAvailable"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	BootcampID           primitive.ObjectID `json:"bootcampId" bson:"bootcamp" example:"507f1f77bcf86cd799439012"`
	Bootcamp             *BootcampSummary   `json:"bootcamp,omitempty" bson:"-"`
	UserID               primitive.ObjectID `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Title                string  `json:"title" binding:"required" example:"Full Stack Web Development"`
	Description          string  `json:"description" binding:"required"`
	Weeks                int     `json:"weeks" binding:"required,gt=0" example:"12"`
	Tuition              float64 `json:"tuition" binding:"required,gte=0" example:"10000"`
	MinimumSkill         string  `json:"minimumSkill" binding:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool    `json:"scholarshipAvailable"`
}

// UpdateCourseRequest is the payload for partially updating a course.
type UpdateCourseRequest struct {
	Title                *string  `json:"title" binding:"omitempty,min=1"`
	Description          *string  `json:"description" binding:"omitempty,min=1"`
	Weeks                *int     `json:"weeks" binding:"omitempty,gt=0"`
	Tuition              *float64 `json:"tuition" binding:"omitempty,gte=0"`
	MinimumSkill         *string  `json:"minimumSkill" binding:"omitempty,oneof=beginner intermediate advanced"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}
