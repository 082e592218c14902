package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/authz"
	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/repository"
	"bootcamp-api/internal/stats"
)

// courseService implements CourseServicer.
type courseService struct {
	courseRepo   repository.CourseRepository
	bootcampRepo repository.BootcampRepository
	stats        stats.Notifier
}

// NewCourseService creates a new CourseServicer.
func NewCourseService(courseRepo repository.CourseRepository, bootcampRepo repository.BootcampRepository, statsNotifier stats.Notifier) CourseServicer {
	return &courseService{
		courseRepo:   courseRepo,
		bootcampRepo: bootcampRepo,
		stats:        statsNotifier,
	}
}

// List returns a page of courses. A non-nil bootcampID scopes the page to
// that bootcamp; the global listing expands each course's bootcamp summary.
func (s *courseService) List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Course, *query.Pagination, error) {
	var base bson.M
	if bootcampID != nil {
		if _, err := s.bootcampRepo.FindByID(ctx, *bootcampID); err != nil {
			return nil, nil, err
		}
		base = bson.M{"bootcamp": *bootcampID}
	}

	courses, pagination, err := s.courseRepo.List(ctx, q, base)
	if err != nil {
		return nil, nil, err
	}

	if bootcampID == nil {
		if err := s.expandBootcamps(ctx, courses); err != nil {
			return nil, nil, err
		}
	}

	return courses, pagination, nil
}

// Get returns a single course with its bootcamp summary expanded.
func (s *courseService) Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	courses := []models.Course{*course}
	if err := s.expandBootcamps(ctx, courses); err != nil {
		return nil, err
	}

	return &courses[0], nil
}

// Create adds a course to a bootcamp the caller owns and schedules an
// average cost recompute.
func (s *courseService) Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateCourseRequest) (*models.Course, error) {
	bootcamp, err := s.bootcampRepo.FindByID(ctx, bootcampID)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(user, bootcamp.UserID) {
		return nil, apperrors.ErrUnauthorized
	}

	course := &models.Course{
		Title:                req.Title,
		Description:          req.Description,
		Weeks:                req.Weeks,
		Tuition:              req.Tuition,
		MinimumSkill:         req.MinimumSkill,
		ScholarshipAvailable: req.ScholarshipAvailable,
		BootcampID:           bootcampID,
		UserID:               user.ID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.stats.CourseChanged(ctx, bootcampID)

	return course, nil
}

// Update applies a partial update after the ownership check.
func (s *courseService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(user, course.UserID) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.courseRepo.Update(ctx, id, req)
}

// Delete removes a course after the ownership check and schedules an
// average cost recompute for its bootcamp.
func (s *courseService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(user, course.UserID) {
		return apperrors.ErrUnauthorized
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.stats.CourseChanged(ctx, course.BootcampID)

	return nil
}

// expandBootcamps attaches the owning bootcamp's summary to each course.
func (s *courseService) expandBootcamps(ctx context.Context, courses []models.Course) error {
	ids := make([]primitive.ObjectID, 0, len(courses))
	seen := make(map[primitive.ObjectID]bool, len(courses))
	for _, course := range courses {
		if !seen[course.BootcampID] {
			seen[course.BootcampID] = true
			ids = append(ids, course.BootcampID)
		}
	}

	summaries, err := s.bootcampRepo.FindSummaries(ctx, ids)
	if err != nil {
		return err
	}

	for i := range courses {
		if summary, ok := summaries[courses[i].BootcampID]; ok {
			courses[i].Bootcamp = &summary
		}
	}

	return nil
}
