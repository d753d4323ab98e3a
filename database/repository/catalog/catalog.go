package catalogRepo

import "parlorspace/models"

// CatalogRepository defines methods for service-listing data access.
type CatalogRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Service, error)
	// List retrieves listings matching the optional filters.
	List(query models.ServiceQuery) ([]models.Service, error)
	// Create inserts a new listing.
	Create(service *models.Service) error
	// UpdateFields applies a partial update to a listing.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a listing by its ID.
	Delete(id string) error
}
