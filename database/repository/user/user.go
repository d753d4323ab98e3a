package userRepo

import "parlorspace/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. A missing
	// record is reported as (nil, nil), not an error.
	GetByEmail(email string) (*models.User, error)
	// List retrieves users matching the optional exact-match filters.
	List(role, status string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial update to a user record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
