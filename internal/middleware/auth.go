// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/models"
	"bootcamp-api/internal/repository"
	"bootcamp-api/pkg/auth"
	"bootcamp-api/pkg/response"
)

// Context keys for storing user data
const (
	CurrentUserKey = "currentUser"
)

// TokenCookieName is the cookie the session token is mirrored into.
const TokenCookieName = "token"

// Protect returns a middleware that authenticates the request. The token is
// read from the Authorization header, falling back to the session cookie,
// and the full user record is loaded so downstream handlers see current
// role and ownership data rather than stale claims.
func Protect(jwtManager *auth.JWTManager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "not authorized to access this route")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "not authorized to access this route")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			// A valid token for a deleted user is still not a session
			response.Unauthorized(c, "not authorized to access this route")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// Authorize returns a middleware that restricts a route to the given roles.
// It must run after Protect.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "not authorized to access this route")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "user role '"+user.Role+"' is not authorized to access this route")
		c.Abort()
	}
}

// GetCurrentUser retrieves the authenticated user from the context.
// Returns nil if the request was not authenticated.
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// extractToken pulls the session token from the Bearer header or, failing
// that, from the session cookie. A malformed header does not block the
// cookie fallback.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie
}
