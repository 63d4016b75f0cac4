package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"staffbot/internal/models"
)

type fakeDirectory struct {
	employees []models.Employee
	err       error
	lastID    string
}

func (f *fakeDirectory) SearchByTelegram(_ context.Context, telegramID string) ([]models.Employee, error) {
	f.lastID = telegramID
	return f.employees, f.err
}

func TestResolveAdminOverride(t *testing.T) {
	dir := &fakeDirectory{employees: []models.Employee{{Role: models.RoleBrigadier}}}
	r := NewResolver(42, dir, zap.NewNop())

	assert.Equal(t, models.RoleAdmin, r.Resolve(context.Background(), 42))
	assert.Empty(t, dir.lastID, "admin override must not hit the directory")
}

func TestResolveUsesStoredRole(t *testing.T) {
	dir := &fakeDirectory{employees: []models.Employee{{Role: models.RoleManager}}}
	r := NewResolver(0, dir, zap.NewNop())

	assert.Equal(t, models.RoleManager, r.Resolve(context.Background(), 100))
	assert.Equal(t, "100", dir.lastID)
}

func TestResolveDefaultsToEmployee(t *testing.T) {
	tests := []struct {
		name string
		dir  *fakeDirectory
	}{
		{"no matching record", &fakeDirectory{}},
		{"lookup failure", &fakeDirectory{err: errors.New("tracker down")}},
		{"record without role", &fakeDirectory{employees: []models.Employee{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(0, tt.dir, zap.NewNop())
			assert.Equal(t, models.RoleEmployee, r.Resolve(context.Background(), 7))
		})
	}
}

func TestRankIsTotalAndStrictlyMonotonic(t *testing.T) {
	roles := models.AllRoles()
	for i, role := range roles {
		assert.Equal(t, 7-i, role.Rank())
	}
	assert.Equal(t, 0, models.Role("intruder").Rank())
}

func TestHasPermissionMatchesRankOrder(t *testing.T) {
	roles := models.AllRoles()
	for _, a := range roles {
		for _, b := range roles {
			assert.Equal(t, a.Rank() >= b.Rank(), HasPermission(a, b),
				"HasPermission(%s, %s)", a, b)
		}
	}
}

func TestUnknownRoleIsNeverPrivileged(t *testing.T) {
	unknown := models.Role("superuser")
	for _, role := range models.AllRoles() {
		assert.False(t, HasPermission(unknown, role))
		assert.True(t, HasPermission(role, unknown))
	}
}
