package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/authz"
	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/geocoding"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/repository"
	"bootcamp-api/internal/stats"
	"bootcamp-api/internal/storage"
)

// earthRadiusMiles converts a distance in miles into the radians MongoDB
// expects for $centerSphere.
const earthRadiusMiles = 3963.0

// bootcampService implements BootcampServicer.
type bootcampService struct {
	bootcampRepo  repository.BootcampRepository
	courseRepo    repository.CourseRepository
	geocoder      geocoding.Geocoder
	storage       storage.Storage
	stats         stats.Notifier
	maxFileUpload int64
}

// NewBootcampService creates a new BootcampServicer.
func NewBootcampService(
	bootcampRepo repository.BootcampRepository,
	courseRepo repository.CourseRepository,
	geocoder geocoding.Geocoder,
	store storage.Storage,
	statsNotifier stats.Notifier,
	maxFileUpload int64,
) BootcampServicer {
	return &bootcampService{
		bootcampRepo:  bootcampRepo,
		courseRepo:    courseRepo,
		geocoder:      geocoder,
		storage:       store,
		stats:         statsNotifier,
		maxFileUpload: maxFileUpload,
	}
}

// List returns a filtered, sorted, paginated page of bootcamps.
func (s *bootcampService) List(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error) {
	return s.bootcampRepo.List(ctx, q)
}

// Get returns a single bootcamp by ID.
func (s *bootcampService) Get(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error) {
	return s.bootcampRepo.FindByID(ctx, id)
}

// Create geocodes the address and publishes a new bootcamp owned by the
// caller. Non-admin users are limited to one bootcamp each.
func (s *bootcampService) Create(ctx context.Context, user *models.User, req *models.CreateBootcampRequest) (*models.Bootcamp, error) {
	if user.Role != models.RoleAdmin {
		exists, err := s.bootcampRepo.ExistsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrBootcampLimitReached
		}
	}

	location, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	bootcamp := &models.Bootcamp{
		Name:          req.Name,
		Description:   req.Description,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         req.Email,
		Location:      *location,
		Careers:       req.Careers,
		Housing:       req.Housing,
		JobAssistance: req.JobAssistance,
		JobGuarantee:  req.JobGuarantee,
		AcceptGi:      req.AcceptGi,
		UserID:        user.ID,
	}

	if err := s.bootcampRepo.Create(ctx, bootcamp); err != nil {
		return nil, err
	}

	return bootcamp, nil
}

// Update applies a partial update after the ownership check. A changed
// address is re-geocoded before anything is written.
func (s *bootcampService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateBootcampRequest) (*models.Bootcamp, error) {
	bootcamp, err := s.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(user, bootcamp.UserID) {
		return nil, apperrors.ErrUnauthorized
	}

	var location *models.Location
	if req.Address != nil {
		location, err = s.geocoder.Geocode(ctx, *req.Address)
		if err != nil {
			return nil, err
		}
	}

	return s.bootcampRepo.Update(ctx, id, req, location)
}

// Delete removes a bootcamp and all of its courses. Courses go first so a
// failure cannot leave them orphaned behind a deleted parent.
func (s *bootcampService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	bootcamp, err := s.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(user, bootcamp.UserID) {
		return apperrors.ErrUnauthorized
	}

	if err := s.courseRepo.DeleteByBootcamp(ctx, id); err != nil {
		return err
	}

	return s.bootcampRepo.Delete(ctx, id)
}

// WithinRadius returns the bootcamps within distanceMiles of a zipcode.
func (s *bootcampService) WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Bootcamp, error) {
	location, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, err
	}

	lng := location.Coordinates[0]
	lat := location.Coordinates[1]
	radius := distanceMiles / earthRadiusMiles

	return s.bootcampRepo.FindWithinRadius(ctx, lng, lat, radius)
}

// UploadPhoto validates and stores a bootcamp photo, recording the stored
// filename on the bootcamp. Returns the stored filename.
func (s *bootcampService) UploadPhoto(ctx context.Context, user *models.User, id primitive.ObjectID, file *multipart.FileHeader) (string, error) {
	bootcamp, err := s.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !authz.CanModify(user, bootcamp.UserID) {
		return "", apperrors.ErrUnauthorized
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.ErrInvalidFileType
	}

	if file.Size > s.maxFileUpload {
		return "", apperrors.ErrFileTooLarge
	}

	// Deterministic name so re-uploads replace the previous photo
	filename := fmt.Sprintf("photo_%s%s", id.Hex(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer src.Close()

	if err := s.storage.PutObject(ctx, filename, src, contentType); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	if err := s.bootcampRepo.UpdatePhoto(ctx, id, filename); err != nil {
		return "", err
	}

	return filename, nil
}
