package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbot/internal/models"
)

func TestBuildMenuAppendsBackButtonLast(t *testing.T) {
	menu := BuildMenu([]Button{
		{Label: "Заявка 1", Action: "manager_request_details_1"},
		{Label: "Заявка 2", Action: "manager_request_details_2"},
	}, "manager_requests")

	require.Len(t, menu, 3)
	last := menu[len(menu)-1]
	assert.Equal(t, BackLabel, last.Label)
	assert.Equal(t, "manager_requests", last.Action)
}

func TestBackOnly(t *testing.T) {
	menu := BackOnly(BackToMain)
	require.Len(t, menu, 1)
	assert.Equal(t, BackToMain, menu[0].Action)
}

func TestFormatEmployeeFieldOrder(t *testing.T) {
	text := FormatEmployee(models.Employee{
		LastName:   "Иванов",
		FirstName:  "Иван",
		MiddleName: "Иванович",
		BirthDate:  "1990-01-01",
		Phone:      "+7 (123) 456-78-90",
		Telegram:   "@ivanov_ivan",
		Company:    `АО "Рога и копыта"`,
		Role:       models.RoleEmployee,
		Status:     "active",
	})

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ФИО: Иванов Иван Иванович", lines[0])
	assert.Equal(t, "Статус: active", lines[6])
}

func TestFormatEmployeeAbsentFieldsRenderEmpty(t *testing.T) {
	text := FormatEmployee(models.Employee{})
	assert.Contains(t, text, "Телефон: \n")
	assert.True(t, strings.HasSuffix(text, "Статус: "))
}

func TestFormatRequestUsesStoredSlots(t *testing.T) {
	req := models.Request{
		Title:             "Заявка на сотрудников",
		Object:            "Склад №1",
		RequiredEmployees: 5,
		AppliedEmployees:  []string{"EMP-1", "EMP-2"},
		// Deliberately inconsistent with required minus applied: the stored
		// value must be displayed, not a recomputation.
		AvailableSlots: 2,
		Status:         "open",
	}

	text := FormatRequest(req)
	assert.Contains(t, text, "Свободных мест: 2")
	assert.Contains(t, text, "Заявлено сотрудников: 2")
	assert.Contains(t, text, "Необходимо сотрудников: 5")
}

func TestFormatShift(t *testing.T) {
	text := FormatShift(models.Shift{
		Date:         "2024-05-01",
		EmployeeName: "Иванов Иван",
		StartTime:    "09:00",
		Status:       "in_progress",
	})

	assert.Contains(t, text, "Дата: 2024-05-01")
	assert.Contains(t, text, fmt.Sprintf("Статус: %s", "in_progress"))
}

func TestFormatCompany(t *testing.T) {
	text := FormatCompany(models.Company{
		FullName:  `ООО "Логистика"`,
		ShortName: "Логистика",
		INN:       "7701234567",
	})

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `Полное наименование: ООО "Логистика"`, lines[0])
}
