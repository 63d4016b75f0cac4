// Package format renders domain records into display text and action lists
// into button layouts. Everything here is a pure function: no tracker calls,
// no session reads, absent fields render as empty strings.
package format

import (
	"fmt"

	"staffbot/internal/models"
)

// Button is one inline-keyboard entry: a visible label and the action token
// sent back when pressed.
type Button struct {
	Label  string
	Action string
}

// BackToMain is the universal token returning to the role's main menu.
const BackToMain = "back_to_main"

// BackLabel is the label used for every back-navigation button.
const BackLabel = "Назад"

// BuildMenu appends the mandatory back button after the provided buttons.
func BuildMenu(buttons []Button, backTarget string) []Button {
	menu := make([]Button, 0, len(buttons)+1)
	menu = append(menu, buttons...)
	menu = append(menu, Button{Label: BackLabel, Action: backTarget})
	return menu
}

// BackOnly is a menu with nothing but a back button.
func BackOnly(backTarget string) []Button {
	return BuildMenu(nil, backTarget)
}

func FormatEmployee(emp models.Employee) string {
	return fmt.Sprintf(
		"ФИО: %s %s %s\n"+
			"Дата рождения: %s\n"+
			"Телефон: %s\n"+
			"Telegram: %s\n"+
			"Компания: %s\n"+
			"Роль: %s\n"+
			"Статус: %s",
		emp.LastName, emp.FirstName, emp.MiddleName,
		emp.BirthDate, emp.Phone, emp.Telegram, emp.Company, emp.Role, emp.Status,
	)
}

func FormatCompany(company models.Company) string {
	return fmt.Sprintf(
		"Полное наименование: %s\n"+
			"Сокращенное наименование: %s\n"+
			"ИНН: %s\n"+
			"Фактический адрес: %s\n"+
			"Юридический адрес: %s\n"+
			"Руководитель: %s",
		company.FullName, company.ShortName, company.INN,
		company.ActualAddress, company.LegalAddress, company.DirectorFIO,
	)
}

func FormatShift(shift models.Shift) string {
	return fmt.Sprintf(
		"Дата: %s\n"+
			"Сотрудник: %s\n"+
			"Время начала: %s\n"+
			"Время окончания: %s\n"+
			"Номер жилета: %s\n"+
			"Статус: %s",
		shift.Date, shift.EmployeeName, shift.StartTime,
		shift.EndTime, shift.VestNumber, shift.Status,
	)
}

// FormatRequest prints the stored slot count as-is; it is never recomputed
// here, so the display cannot drift from the record.
func FormatRequest(req models.Request) string {
	return fmt.Sprintf(
		"Заголовок: %s\n"+
			"Объект: %s\n"+
			"Необходимо сотрудников: %d\n"+
			"Заявлено сотрудников: %d\n"+
			"Свободных мест: %d\n"+
			"Статус: %s",
		req.Title, req.Object, req.RequiredEmployees,
		len(req.AppliedEmployees), req.AvailableSlots, req.Status,
	)
}
