package catalog

import (
	"fmt"
	"time"

	"parlorspace/models"
	"parlorspace/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateService stamps identifiers on a new listing and persists it.
func (s *DefaultCatalogService) CreateService(service models.Service) (*models.Service, error) {
	if service.ServiceName == "" {
		return nil, utils.NewValidationError("serviceName is required")
	}

	service.ID = uuid.New().String()
	service.TrackingID = utils.GenerateTrackingID()
	service.CreatedAt = time.Now()

	if err := s.Repo.Create(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	utils.GetLogger().Info("service listed",
		zap.String("id", service.ID), zap.String("serviceName", service.ServiceName))
	return &service, nil
}

// GetService retrieves one listing.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// ListServices retrieves listings matching the optional filters.
func (s *DefaultCatalogService) ListServices(query models.ServiceQuery) ([]models.Service, error) {
	return s.Repo.List(query)
}

// UpdateService applies a partial update and returns the stored record.
func (s *DefaultCatalogService) UpdateService(id string, fields map[string]any) (*models.Service, error) {
	// Identifiers are never client-writable.
	delete(fields, "id")
	delete(fields, "trackingId")
	delete(fields, "createdAt")
	if len(fields) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteService removes a listing.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.Delete(id)
}
