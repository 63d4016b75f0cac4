package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// EmployeeManager maps employee records to EMP issues. It is a stateless
// façade: no validation beyond defaulting, no caching.
type EmployeeManager struct {
	tracker tracker.API
}

func NewEmployeeManager(api tracker.API) *EmployeeManager {
	return &EmployeeManager{tracker: api}
}

func (m *EmployeeManager) Create(ctx context.Context, emp models.Employee) (models.Employee, error) {
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:        models.QueueEmployees,
		Summary:      employeeSummary(emp),
		Description:  "Карточка сотрудника",
		Type:         models.IssueTypeTask,
		CustomFields: employeeFields(emp),
	})
	if err != nil {
		return models.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return employeeFromIssue(issue), nil
}

func (m *EmployeeManager) Get(ctx context.Context, key string) (models.Employee, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return employeeFromIssue(issue), nil
}

func (m *EmployeeManager) Update(ctx context.Context, key string, emp models.Employee) (models.Employee, error) {
	issue, err := m.tracker.UpdateIssue(ctx, key, tracker.IssuePatch{
		Summary:      employeeSummary(emp),
		CustomFields: employeeFields(emp),
	})
	if err != nil {
		return models.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return employeeFromIssue(issue), nil
}

// Search runs a tracker query restricted to the employee queue.
func (m *EmployeeManager) Search(ctx context.Context, criteria string) ([]models.Employee, error) {
	query := "Queue: " + models.QueueEmployees
	if criteria != "" {
		query += " " + criteria
	}
	issues, err := m.tracker.SearchIssues(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	employees := make([]models.Employee, 0, len(issues))
	for _, issue := range issues {
		employees = append(employees, employeeFromIssue(issue))
	}
	return employees, nil
}

// SearchByTelegram finds employees whose stored telegram id matches.
func (m *EmployeeManager) SearchByTelegram(ctx context.Context, telegramID string) ([]models.Employee, error) {
	return m.Search(ctx, fmt.Sprintf("\"telegram\": %q", telegramID))
}

func employeeSummary(emp models.Employee) string {
	return fmt.Sprintf("Сотрудник: %s %s", emp.FirstName, emp.LastName)
}

func employeeFields(emp models.Employee) map[string]any {
	role := emp.Role
	if role == "" {
		role = models.RoleEmployee
	}
	status := emp.Status
	if status == "" {
		status = "active"
	}
	objects := emp.Objects
	if objects == nil {
		objects = []string{}
	}
	return map[string]any{
		"lastName":            emp.LastName,
		"firstName":           emp.FirstName,
		"middleName":          emp.MiddleName,
		"birthDate":           emp.BirthDate,
		"phone":               emp.Phone,
		"telegram":            emp.Telegram,
		"company":             emp.Company,
		"objects":             objects,
		"workEmail":           emp.WorkEmail,
		"passportSeries":      emp.PassportSeries,
		"passportNumber":      emp.PassportNumber,
		"passportDivision":    emp.PassportDivision,
		"passportIssueDate":   emp.PassportIssueDate,
		"passportIssuedBy":    emp.PassportIssuedBy,
		"birthCity":           emp.BirthCity,
		"registrationAddress": emp.RegistrationAddress,
		"registrationDate":    emp.RegistrationDate,
		"education":           emp.Education,
		"bank":                emp.Bank,
		"accountNumber":       emp.AccountNumber,
		"bic":                 emp.BIC,
		"corrAccount":         emp.CorrAccount,
		"bankInn":             emp.BankINN,
		"role":                string(role),
		"status":              status,
	}
}

func employeeFromIssue(issue models.Issue) models.Employee {
	f := issue.CustomFields
	return models.Employee{
		Key:                 issue.Key,
		LastName:            strField(f, "lastName"),
		FirstName:           strField(f, "firstName"),
		MiddleName:          strField(f, "middleName"),
		BirthDate:           strField(f, "birthDate"),
		Phone:               strField(f, "phone"),
		Telegram:            strField(f, "telegram"),
		Company:             strField(f, "company"),
		Objects:             listField(f, "objects"),
		WorkEmail:           strField(f, "workEmail"),
		PassportSeries:      strField(f, "passportSeries"),
		PassportNumber:      strField(f, "passportNumber"),
		PassportDivision:    strField(f, "passportDivision"),
		PassportIssueDate:   strField(f, "passportIssueDate"),
		PassportIssuedBy:    strField(f, "passportIssuedBy"),
		BirthCity:           strField(f, "birthCity"),
		RegistrationAddress: strField(f, "registrationAddress"),
		RegistrationDate:    strField(f, "registrationDate"),
		Education:           strField(f, "education"),
		Bank:                strField(f, "bank"),
		AccountNumber:       strField(f, "accountNumber"),
		BIC:                 strField(f, "bic"),
		CorrAccount:         strField(f, "corrAccount"),
		BankINN:             strField(f, "bankInn"),
		Role:                models.Role(strField(f, "role")),
		Status:              strField(f, "status"),
	}
}
