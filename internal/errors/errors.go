// Package errors provides custom error types for the application.
package errors

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("please provide an email and password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrEmailSendFailed    = errors.New("the reset email could not be sent")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// Bootcamp errors
var (
	ErrBootcampNotFound     = errors.New("bootcamp not found")
	ErrDuplicateBootcamp    = errors.New("bootcamp with this name already exists")
	ErrBootcampLimitReached = errors.New("the user has already published a bootcamp")
	ErrGeocodingFailed      = errors.New("the address could not be geocoded")
	ErrInvalidFileType      = errors.New("please upload a valid image file")
	ErrFileTooLarge         = errors.New("the uploaded file exceeds the size limit")
	ErrUploadFailed         = errors.New("problem with image file upload")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Review errors
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("user has already reviewed this bootcamp")
)
