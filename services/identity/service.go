package identity

import (
	"context"
	"fmt"
	"time"

	"parlorspace/models"
	"parlorspace/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	roleCacheTTL       = 5 * time.Minute
	roleCacheKeyPrefix = "userRole:"
)

// LoginOrCreate registers the user unless the email already exists.
func (s *DefaultIdentityService) LoginOrCreate(user models.User) (*models.User, bool, error) {
	logger := utils.GetLogger()

	if user.Email == "" {
		return nil, false, utils.NewValidationError("email is required")
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if existing != nil {
		logger.Debug("LoginOrCreate: user already exists", zap.String("email", user.Email))
		return existing, false, nil
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	// Decorator accounts await approval before they can take bookings.
	if user.Role == models.RoleDecorator && user.Status == "" {
		user.Status = models.DecoratorStatusPending
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()

	if err := s.Repo.Create(&user); err != nil {
		// Two concurrent registrations for the same email can both
		// miss the lookup; the unique index turns the loser into a
		// conflict, which resolves to the surviving record.
		if utils.ErrorCode(err) == utils.CodeConflict {
			winner, lookupErr := s.Repo.GetByEmail(user.Email)
			if lookupErr == nil && winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("LoginOrCreate: user created",
		zap.String("email", user.Email), zap.String("role", user.Role))
	return &user, true, nil
}

// ListUsers returns users matching the optional role and status filters.
func (s *DefaultIdentityService) ListUsers(role, status string) ([]models.User, error) {
	return s.Repo.List(role, status)
}

// GetRoleByEmail resolves an email to its role, defaulting to "user" for
// unknown emails. Results are cached briefly since clients poll this on
// every page load.
func (s *DefaultIdentityService) GetRoleByEmail(email string) (string, error) {
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if role, err := s.Cache.Get(ctx, roleCacheKeyPrefix+email).Result(); err == nil && role != "" {
			return role, nil
		}
	}

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user role: %w", err)
	}
	role := models.RoleUser
	if user != nil && user.Role != "" {
		role = user.Role
	}

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Cache.Set(ctx, roleCacheKeyPrefix+email, role, roleCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache user role", zap.String("email", email), zap.Error(err))
		}
	}
	return role, nil
}

// UpdateRole changes an account's role.
func (s *DefaultIdentityService) UpdateRole(id, role string) error {
	if role == "" {
		return utils.NewValidationError("role is required")
	}
	if err := s.Repo.UpdateFields(id, map[string]any{"role": role}); err != nil {
		return err
	}
	s.invalidateRoleCache(id)
	return nil
}

// UpdateStatus changes an account's approval status.
func (s *DefaultIdentityService) UpdateStatus(id, status string) error {
	if status == "" {
		return utils.NewValidationError("status is required")
	}
	return s.Repo.UpdateFields(id, map[string]any{"status": status})
}

// DeleteUser removes an account.
func (s *DefaultIdentityService) DeleteUser(id string) error {
	s.invalidateRoleCache(id)
	return s.Repo.Delete(id)
}

// invalidateRoleCache drops the cached role for the account's email, if
// the record still resolves.
func (s *DefaultIdentityService) invalidateRoleCache(id string) {
	if s.Cache == nil {
		return
	}
	user, err := s.Repo.GetByID(id)
	if err != nil || user == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, roleCacheKeyPrefix+user.Email).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate role cache", zap.String("email", user.Email), zap.Error(err))
	}
}
