// Package authz implements the ownership and role checks applied to
// mutating operations.
package authz

import (
	"bootcamp-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanModify reports whether the acting user may mutate a record owned by
// ownerID. Admins may modify anything; everyone else only their own records.
// Callers must resolve the record first: a missing record is a not-found
// failure, never an authorization one.
func CanModify(user *models.User, ownerID primitive.ObjectID) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.ID == ownerID
}

// HasRole reports whether the user holds one of the given roles.
func HasRole(user *models.User, roles ...string) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}
