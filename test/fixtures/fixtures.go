// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"bootcamp-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Role:      models.RoleUser,
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			CreatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) AsPublisher() *UserBuilder {
	b.user.Role = models.RolePublisher
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Bootcamp Fixtures =====

// BootcampBuilder provides fluent API for building test bootcamps.
type BootcampBuilder struct {
	bootcamp models.Bootcamp
}

// NewBootcamp creates a new BootcampBuilder with sensible defaults.
func NewBootcamp() *BootcampBuilder {
	name := fmt.Sprintf("Test Bootcamp %s", primitive.NewObjectID().Hex()[:8])
	return &BootcampBuilder{
		bootcamp: models.Bootcamp{
			ID:          primitive.NewObjectID(),
			Name:        name,
			Slug:        fmt.Sprintf("test-bootcamp-%s", primitive.NewObjectID().Hex()[:8]),
			Description: "A test bootcamp",
			Location: models.Location{
				Type:        "Point",
				Coordinates: []float64{-71.104028, 42.350846},
				City:        "Boston",
				State:       "MA",
				Zipcode:     "02215",
			},
			Careers:   []string{"Web Development"},
			Photo:     models.DefaultPhoto,
			CreatedAt: time.Now(),
			UserID:    primitive.NewObjectID(),
		},
	}
}

func (b *BootcampBuilder) WithID(id primitive.ObjectID) *BootcampBuilder {
	b.bootcamp.ID = id
	return b
}

func (b *BootcampBuilder) WithName(name string) *BootcampBuilder {
	b.bootcamp.Name = name
	return b
}

func (b *BootcampBuilder) WithOwner(userID primitive.ObjectID) *BootcampBuilder {
	b.bootcamp.UserID = userID
	return b
}

func (b *BootcampBuilder) WithCareers(careers ...string) *BootcampBuilder {
	b.bootcamp.Careers = careers
	return b
}

func (b *BootcampBuilder) WithCoordinates(lng, lat float64) *BootcampBuilder {
	b.bootcamp.Location.Coordinates = []float64{lng, lat}
	return b
}

func (b *BootcampBuilder) WithAverageCost(cost int) *BootcampBuilder {
	b.bootcamp.AverageCost = &cost
	return b
}

func (b *BootcampBuilder) Build() models.Bootcamp {
	return b.bootcamp
}

func (b *BootcampBuilder) BuildPtr() *models.Bootcamp {
	return &b.bootcamp
}

// ===== Course Fixtures =====

// CourseBuilder provides fluent API for building test courses.
type CourseBuilder struct {
	course models.Course
}

// NewCourse creates a new CourseBuilder with sensible defaults.
func NewCourse() *CourseBuilder {
	return &CourseBuilder{
		course: models.Course{
			ID:           primitive.NewObjectID(),
			Title:        "Full Stack Web Development",
			Description:  "A test course",
			Weeks:        12,
			Tuition:      10000,
			MinimumSkill: models.SkillBeginner,
			CreatedAt:    time.Now(),
			BootcampID:   primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
		},
	}
}

func (b *CourseBuilder) WithID(id primitive.ObjectID) *CourseBuilder {
	b.course.ID = id
	return b
}

func (b *CourseBuilder) WithTitle(title string) *CourseBuilder {
	b.course.Title = title
	return b
}

func (b *CourseBuilder) WithTuition(tuition float64) *CourseBuilder {
	b.course.Tuition = tuition
	return b
}

func (b *CourseBuilder) WithBootcamp(bootcampID primitive.ObjectID) *CourseBuilder {
	b.course.BootcampID = bootcampID
	return b
}

func (b *CourseBuilder) WithOwner(userID primitive.ObjectID) *CourseBuilder {
	b.course.UserID = userID
	return b
}

func (b *CourseBuilder) Build() models.Course {
	return b.course
}

func (b *CourseBuilder) BuildPtr() *models.Course {
	return &b.course
}

// ===== Review Fixtures =====

// ReviewBuilder provides fluent API for building test reviews.
type ReviewBuilder struct {
	review models.Review
}

// NewReview creates a new ReviewBuilder with sensible defaults.
func NewReview() *ReviewBuilder {
	return &ReviewBuilder{
		review: models.Review{
			ID:         primitive.NewObjectID(),
			Title:      "Learned a ton",
			Text:       "Great instructors and solid curriculum",
			Rating:     8,
			CreatedAt:  time.Now(),
			BootcampID: primitive.NewObjectID(),
			UserID:     primitive.NewObjectID(),
		},
	}
}

func (b *ReviewBuilder) WithID(id primitive.ObjectID) *ReviewBuilder {
	b.review.ID = id
	return b
}

func (b *ReviewBuilder) WithRating(rating float64) *ReviewBuilder {
	b.review.Rating = rating
	return b
}

func (b *ReviewBuilder) WithBootcamp(bootcampID primitive.ObjectID) *ReviewBuilder {
	b.review.BootcampID = bootcampID
	return b
}

func (b *ReviewBuilder) WithAuthor(userID primitive.ObjectID) *ReviewBuilder {
	b.review.UserID = userID
	return b
}

func (b *ReviewBuilder) Build() models.Review {
	return b.review
}

func (b *ReviewBuilder) BuildPtr() *models.Review {
	return &b.review
}
