package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/mailer"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/repository"
	"bootcamp-api/pkg/auth"
)

// resetTokenTTL is how long a password reset token stays valid.
const resetTokenTTL = 10 * time.Minute

// authService implements AuthServicer.
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
	mailer     mailer.Mailer
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(userRepo repository.UserRepository, jwtManager *auth.JWTManager, m mailer.Mailer) AuthServicer {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailer:     m,
	}
}

// Register creates a new user account and returns a session token.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return s.jwtManager.GenerateToken(user.ID.Hex())
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password produce the same error so the response never reveals which
// half was wrong.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.jwtManager.GenerateToken(user.ID.Hex())
}

// UpdateDetails updates the current user's name and email.
func (s *authService) UpdateDetails(ctx context.Context, userID primitive.ObjectID, req *models.UpdateDetailsRequest) (*models.User, error) {
	return s.userRepo.UpdateDetails(ctx, userID, req)
}

// UpdatePassword changes the current user's password after verifying the
// old one, and returns a fresh session token.
func (s *authService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := auth.CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return "", apperrors.ErrIncorrectPassword
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return "", err
	}

	return s.jwtManager.GenerateToken(user.ID.Hex())
}

// ForgotPassword generates a reset token, stores its hash on the user, and
// emails the raw token. If the email cannot be sent the token is rolled
// back so no orphaned reset state survives.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expire := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, tokenHash, expire); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"You are receiving this email because you (or someone else) requested a password reset. "+
			"Make a PUT request to:\n\n/api/auth/resetpassword/%s",
		token,
	)

	if err := s.mailer.Send(ctx, user.Email, "Password reset token", body); err != nil {
		if clearErr := s.userRepo.ClearResetToken(ctx, user.ID); clearErr != nil {
			return fmt.Errorf("failed to roll back reset token: %w", clearErr)
		}
		return err
	}

	return nil
}

// ResetPassword sets a new password for the user holding the unexpired
// token, consumes the token, and returns a fresh session token.
func (s *authService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (string, error) {
	user, err := s.userRepo.FindByResetToken(ctx, auth.HashResetToken(token))
	if err != nil {
		return "", err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return "", err
	}

	if err := s.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return "", err
	}

	return s.jwtManager.GenerateToken(user.ID.Hex())
}
