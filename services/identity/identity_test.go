package identity_test

import (
	"fmt"
	"testing"

	"parlorspace/models"
	"parlorspace/services/identity"
	"parlorspace/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepo is an in-memory UserRepository.
type mockUserRepo struct {
	byID map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[string]*models.User)}
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, utils.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(role, status string) ([]models.User, error) {
	var out []models.User
	for _, u := range m.byID {
		if role != "" && u.Role != role {
			continue
		}
		if status != "" && u.Status != status {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.byID {
		if u.Email == user.Email {
			return utils.NewConflictError("user already exists")
		}
	}
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateFields(id string, fields map[string]any) error {
	u, ok := m.byID[id]
	if !ok {
		return utils.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	if role, ok := fields["role"].(string); ok {
		u.Role = role
	}
	if status, ok := fields["status"].(string); ok {
		u.Status = status
	}
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	if _, ok := m.byID[id]; !ok {
		return utils.NewNotFoundError(fmt.Sprintf("user with id %s not found", id))
	}
	delete(m.byID, id)
	return nil
}

func newService(repo *mockUserRepo) *identity.DefaultIdentityService {
	return &identity.DefaultIdentityService{Repo: repo}
}

func TestLoginOrCreateDefaultsRole(t *testing.T) {
	svc := newService(newMockUserRepo())

	stored, created, err := svc.LoginOrCreate(models.User{Email: "amy@example.com"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Empty(t, stored.Status, "non-decorator accounts carry no status")
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestLoginOrCreateDecoratorDefaultsPending(t *testing.T) {
	svc := newService(newMockUserRepo())

	stored, created, err := svc.LoginOrCreate(models.User{
		Email: "deco@example.com",
		Role:  models.RoleDecorator,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.DecoratorStatusPending, stored.Status)
}

func TestLoginOrCreateReturnsExistingRecord(t *testing.T) {
	repo := newMockUserRepo()
	svc := newService(repo)

	first, created, err := svc.LoginOrCreate(models.User{Email: "amy@example.com", Name: "Amy"})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.LoginOrCreate(models.User{Email: "amy@example.com", Name: "Impostor"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Amy", second.Name)
	assert.Len(t, repo.byID, 1, "no second record may be stored")
}

func TestLoginOrCreateRequiresEmail(t *testing.T) {
	svc := newService(newMockUserRepo())

	_, _, err := svc.LoginOrCreate(models.User{Name: "no email"})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestGetRoleByEmailDefaultsToUser(t *testing.T) {
	svc := newService(newMockUserRepo())

	role, err := svc.GetRoleByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestGetRoleByEmailResolvesStoredRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := newService(repo)

	_, _, err := svc.LoginOrCreate(models.User{Email: "deco@example.com", Role: models.RoleDecorator})
	require.NoError(t, err)

	role, err := svc.GetRoleByEmail("deco@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDecorator, role)
}

func TestUpdateRoleRequiresRole(t *testing.T) {
	svc := newService(newMockUserRepo())

	err := svc.UpdateRole("some-id", "")
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestUpdateRoleUnknownIDIsNotFound(t *testing.T) {
	svc := newService(newMockUserRepo())

	err := svc.UpdateRole("missing", models.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestListUsersFiltersByRoleAndStatus(t *testing.T) {
	repo := newMockUserRepo()
	svc := newService(repo)

	for _, u := range []models.User{
		{Email: "a@example.com", Role: models.RoleUser},
		{Email: "b@example.com", Role: models.RoleDecorator},
		{Email: "c@example.com", Role: models.RoleDecorator},
	} {
		_, _, err := svc.LoginOrCreate(u)
		require.NoError(t, err)
	}

	decorators, err := svc.ListUsers(models.RoleDecorator, "")
	require.NoError(t, err)
	assert.Len(t, decorators, 2)

	pending, err := svc.ListUsers(models.RoleDecorator, models.DecoratorStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2, "fresh decorators default to pending")
}
