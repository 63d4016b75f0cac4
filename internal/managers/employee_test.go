package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

func TestCreateEmployeeDefaultsRoleAndStatus(t *testing.T) {
	ft := newFakeTracker()
	m := NewEmployeeManager(ft)

	created, err := m.Create(context.Background(), models.Employee{
		FirstName: "Иван",
		LastName:  "Иванов",
		Telegram:  "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleEmployee, created.Role)
	assert.Equal(t, "active", created.Status)

	issue := ft.issues[created.Key]
	assert.Equal(t, models.QueueEmployees, issue.Queue)
	assert.Equal(t, "Сотрудник: Иван Иванов", issue.Summary)
}

func TestGetEmployeeMapsCustomFields(t *testing.T) {
	ft := newFakeTracker()
	ft.issues["EMP-7"] = models.Issue{
		Key: "EMP-7",
		CustomFields: map[string]any{
			"lastName":  "Петров",
			"firstName": "Петр",
			"telegram":  "@petrov",
			"company":   `АО "Рога и копыта"`,
			"objects":   []any{"Склад №1", "Склад №2"},
			"role":      "brigadier",
			"status":    "active",
		},
	}
	m := NewEmployeeManager(ft)

	emp, err := m.Get(context.Background(), "EMP-7")
	require.NoError(t, err)

	assert.Equal(t, "Петров", emp.LastName)
	assert.Equal(t, models.RoleBrigadier, emp.Role)
	assert.Equal(t, []string{"Склад №1", "Склад №2"}, emp.Objects)
}

func TestGetEmployeeAbsentFieldsDefaultToEmpty(t *testing.T) {
	ft := newFakeTracker()
	ft.issues["EMP-1"] = models.Issue{Key: "EMP-1", CustomFields: map[string]any{}}
	m := NewEmployeeManager(ft)

	emp, err := m.Get(context.Background(), "EMP-1")
	require.NoError(t, err)

	assert.Empty(t, emp.LastName)
	assert.Empty(t, emp.Phone)
	assert.Nil(t, emp.Objects)
}

func TestGetEmployeeNotFound(t *testing.T) {
	ft := newFakeTracker()
	m := NewEmployeeManager(ft)

	_, err := m.Get(context.Background(), "EMP-404")
	require.Error(t, err)
	assert.True(t, tracker.IsNotFound(err))
}

func TestSearchByTelegramQuery(t *testing.T) {
	ft := newFakeTracker()
	m := NewEmployeeManager(ft)

	_, err := m.SearchByTelegram(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, `Queue: EMP "telegram": "123456"`, ft.lastQuery)
}
