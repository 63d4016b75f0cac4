package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// CompanyManager maps company records to COMP issues.
type CompanyManager struct {
	tracker tracker.API
}

func NewCompanyManager(api tracker.API) *CompanyManager {
	return &CompanyManager{tracker: api}
}

func (m *CompanyManager) Create(ctx context.Context, company models.Company) (models.Company, error) {
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:        models.QueueCompanies,
		Summary:      fmt.Sprintf("Компания: %s", company.FullName),
		Description:  "Карточка компании",
		Type:         models.IssueTypeTask,
		CustomFields: companyFields(company),
	})
	if err != nil {
		return models.Company{}, fmt.Errorf("create company: %w", err)
	}
	return companyFromIssue(issue), nil
}

func (m *CompanyManager) Get(ctx context.Context, key string) (models.Company, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.Company{}, fmt.Errorf("get company: %w", err)
	}
	return companyFromIssue(issue), nil
}

func (m *CompanyManager) Update(ctx context.Context, key string, company models.Company) (models.Company, error) {
	issue, err := m.tracker.UpdateIssue(ctx, key, tracker.IssuePatch{
		Summary:      fmt.Sprintf("Компания: %s", company.FullName),
		CustomFields: companyFields(company),
	})
	if err != nil {
		return models.Company{}, fmt.Errorf("update company: %w", err)
	}
	return companyFromIssue(issue), nil
}

func companyFields(company models.Company) map[string]any {
	return map[string]any{
		"directorFio":   company.DirectorFIO,
		"fullName":      company.FullName,
		"shortName":     company.ShortName,
		"inn":           company.INN,
		"actualAddress": company.ActualAddress,
		"legalAddress":  company.LegalAddress,
		"ogrnip":        company.OGRNIP,
		"ogrn":          company.OGRN,
		"okpo":          company.OKPO,
		"bank":          company.Bank,
		"bik":           company.BIK,
		"corrAccount":   company.CorrAccount,
		"account":       company.Account,
		"email":         company.Email,
		"phone":         company.Phone,
		"okved":         company.OKVED,
		"taxSystem":     company.TaxSystem,
	}
}

func companyFromIssue(issue models.Issue) models.Company {
	f := issue.CustomFields
	return models.Company{
		Key:           issue.Key,
		DirectorFIO:   strField(f, "directorFio"),
		FullName:      strField(f, "fullName"),
		ShortName:     strField(f, "shortName"),
		INN:           strField(f, "inn"),
		ActualAddress: strField(f, "actualAddress"),
		LegalAddress:  strField(f, "legalAddress"),
		OGRNIP:        strField(f, "ogrnip"),
		OGRN:          strField(f, "ogrn"),
		OKPO:          strField(f, "okpo"),
		Bank:          strField(f, "bank"),
		BIK:           strField(f, "bik"),
		CorrAccount:   strField(f, "corrAccount"),
		Account:       strField(f, "account"),
		Email:         strField(f, "email"),
		Phone:         strField(f, "phone"),
		OKVED:         strField(f, "okved"),
		TaxSystem:     strField(f, "taxSystem"),
	}
}
