package catalog_test

import (
	"fmt"
	"testing"

	"parlorspace/models"
	"parlorspace/services/catalog"
	"parlorspace/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalogRepo is an in-memory CatalogRepository.
type mockCatalogRepo struct {
	byID map[string]*models.Service
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{byID: make(map[string]*models.Service)}
}

func (m *mockCatalogRepo) GetByID(id string) (*models.Service, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, utils.NewNotFoundError(fmt.Sprintf("service with id %s not found", id))
	}
	cp := *s
	return &cp, nil
}

func (m *mockCatalogRepo) List(query models.ServiceQuery) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.byID {
		if query.Category != "" && s.Category != query.Category {
			continue
		}
		if query.MinBudget != nil && s.Cost < *query.MinBudget {
			continue
		}
		if query.MaxBudget != nil && s.Cost > *query.MaxBudget {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockCatalogRepo) Create(s *models.Service) error {
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *mockCatalogRepo) UpdateFields(id string, fields map[string]any) error {
	s, ok := m.byID[id]
	if !ok {
		return utils.NewNotFoundError(fmt.Sprintf("service with id %s not found", id))
	}
	if name, ok := fields["serviceName"].(string); ok {
		s.ServiceName = name
	}
	if cost, ok := fields["cost"].(float64); ok {
		s.Cost = cost
	}
	return nil
}

func (m *mockCatalogRepo) Delete(id string) error {
	if _, ok := m.byID[id]; !ok {
		return utils.NewNotFoundError(fmt.Sprintf("service with id %s not found", id))
	}
	delete(m.byID, id)
	return nil
}

func TestCreateServiceStampsIdentifiers(t *testing.T) {
	svc := &catalog.DefaultCatalogService{Repo: newMockCatalogRepo()}

	created, err := svc.CreateService(models.Service{
		ServiceName: "Balloon Garland Setup",
		Category:    "party",
		Cost:        79.5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Regexp(t, `^PS-\d{8}-[0-9A-F]{6}$`, created.TrackingID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateServiceRequiresName(t *testing.T) {
	svc := &catalog.DefaultCatalogService{Repo: newMockCatalogRepo()}

	_, err := svc.CreateService(models.Service{Category: "party"})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestUpdateServiceStripsIdentifierFields(t *testing.T) {
	repo := newMockCatalogRepo()
	svc := &catalog.DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService(models.Service{ServiceName: "Wall Art", Cost: 30})
	require.NoError(t, err)

	updated, err := svc.UpdateService(created.ID, map[string]any{
		"id":          "forged",
		"trackingId":  "PS-00000000-FFFFFF",
		"serviceName": "Wall Art Premium",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.TrackingID, updated.TrackingID)
	assert.Equal(t, "Wall Art Premium", updated.ServiceName)
}

func TestUpdateServiceWithOnlyIdentifiersIsValidation(t *testing.T) {
	svc := &catalog.DefaultCatalogService{Repo: newMockCatalogRepo()}

	_, err := svc.UpdateService("any", map[string]any{"id": "forged"})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestUpdateServiceUnknownIDIsNotFound(t *testing.T) {
	svc := &catalog.DefaultCatalogService{Repo: newMockCatalogRepo()}

	_, err := svc.UpdateService("missing", map[string]any{"cost": 12.0})
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}
