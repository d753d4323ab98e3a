package identity

import (
	userRepo "parlorspace/database/repository/user"
	"parlorspace/models"

	"github.com/go-redis/redis/v8"
)

// IdentityService manages platform accounts.
type IdentityService interface {
	// LoginOrCreate registers the user unless the email is already
	// taken, in which case the existing record is returned. The bool
	// reports whether a new record was created.
	LoginOrCreate(user models.User) (*models.User, bool, error)
	// ListUsers returns users matching the optional exact-match filters.
	ListUsers(role, status string) ([]models.User, error)
	// GetRoleByEmail resolves an email to its role, defaulting to
	// "user" for unknown emails.
	GetRoleByEmail(email string) (string, error)
	// UpdateRole changes an account's role.
	UpdateRole(id, role string) error
	// UpdateStatus changes an account's approval status.
	UpdateStatus(id, status string) error
	// DeleteUser removes an account.
	DeleteUser(id string) error
}

// DefaultIdentityService implements IdentityService. Cache, when set, is
// used as a read-through cache for the hot role-lookup path.
type DefaultIdentityService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}
