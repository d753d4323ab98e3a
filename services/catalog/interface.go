package catalog

import (
	catalogRepo "parlorspace/database/repository/catalog"
	"parlorspace/models"
)

// CatalogService manages decoration service listings.
type CatalogService interface {
	CreateService(service models.Service) (*models.Service, error)
	GetService(id string) (*models.Service, error)
	ListServices(query models.ServiceQuery) ([]models.Service, error)
	UpdateService(id string, fields map[string]any) (*models.Service, error)
	DeleteService(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
