package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbot/internal/models"
)

func TestShiftCreateDefaultsStatusAndEquipment(t *testing.T) {
	ft := newFakeTracker()
	m := NewShiftManager(ft)

	shift, err := m.Create(context.Background(), models.Shift{
		Date:         "2024-05-01",
		Employee:     "EMP-1",
		EmployeeName: "Иванов Иван",
		StartTime:    "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "SHIFT-1", shift.Key)
	assert.Equal(t, ShiftStatusPlanned, shift.Status)
	assert.NotNil(t, shift.EquipmentTaken)
	assert.Empty(t, shift.EquipmentTaken)
	assert.Equal(t, "Смена: 2024-05-01 - Иванов Иван", ft.issues["SHIFT-1"].Summary)
}

func TestShiftCloseSetsEndTimeAndStatus(t *testing.T) {
	ft := newFakeTracker()
	m := NewShiftManager(ft)

	created, err := m.Create(context.Background(), models.Shift{
		Date:   "2024-05-01",
		Status: ShiftStatusInProgress,
	})
	require.NoError(t, err)

	closed, err := m.Close(context.Background(), created.Key, "18:00")
	require.NoError(t, err)

	assert.Equal(t, ShiftStatusCompleted, closed.Status)
	assert.Equal(t, "18:00", closed.EndTime)
	require.Len(t, ft.updates, 1)
	assert.Equal(t, ShiftStatusCompleted, ft.updates[0].CustomFields["status"])
}

func TestCityRoundTrip(t *testing.T) {
	ft := newFakeTracker()
	m := NewCityManager(ft)

	created, err := m.Create(context.Background(), models.City{Name: "Москва"})
	require.NoError(t, err)
	assert.Equal(t, "CITY-1", created.Key)

	got, err := m.Get(context.Background(), created.Key)
	require.NoError(t, err)
	assert.Equal(t, "Москва", got.Name)
	assert.Equal(t, "Город: Москва", ft.issues["CITY-1"].Summary)
}

func TestWarehouseCreateStoresChatFields(t *testing.T) {
	ft := newFakeTracker()
	m := NewWarehouseManager(ft)

	created, err := m.Create(context.Background(), models.Warehouse{
		Name:          "Склад №1",
		PartnerChatID: "-100123",
		TgCS:          "@cs_contact",
	})
	require.NoError(t, err)

	fields := ft.issues[created.Key].CustomFields
	assert.Equal(t, "-100123", fields["partnerChatId"])
	assert.Equal(t, "@cs_contact", fields["tgCs"])
	assert.Equal(t, "Склад: Склад №1", ft.issues[created.Key].Summary)
}

func TestCompanyCreateAndGetMapsRequisites(t *testing.T) {
	ft := newFakeTracker()
	m := NewCompanyManager(ft)

	created, err := m.Create(context.Background(), models.Company{
		FullName:  `ООО "Логистика"`,
		ShortName: "Логистика",
		INN:       "7701234567",
	})
	require.NoError(t, err)

	got, err := m.Get(context.Background(), created.Key)
	require.NoError(t, err)
	assert.Equal(t, `ООО "Логистика"`, got.FullName)
	assert.Equal(t, "7701234567", got.INN)
	assert.Equal(t, `Компания: ООО "Логистика"`, ft.issues[created.Key].Summary)
}
