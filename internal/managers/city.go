package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// CityManager maps city records to CITY issues.
type CityManager struct {
	tracker tracker.API
}

func NewCityManager(api tracker.API) *CityManager {
	return &CityManager{tracker: api}
}

func (m *CityManager) Create(ctx context.Context, city models.City) (models.City, error) {
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:       models.QueueCities,
		Summary:     fmt.Sprintf("Город: %s", city.Name),
		Description: "Карточка города",
		Type:        models.IssueTypeTask,
		CustomFields: map[string]any{
			"name": city.Name,
		},
	})
	if err != nil {
		return models.City{}, fmt.Errorf("create city: %w", err)
	}
	return cityFromIssue(issue), nil
}

func (m *CityManager) Get(ctx context.Context, key string) (models.City, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.City{}, fmt.Errorf("get city: %w", err)
	}
	return cityFromIssue(issue), nil
}

func cityFromIssue(issue models.Issue) models.City {
	return models.City{
		Key:  issue.Key,
		Name: strField(issue.CustomFields, "name"),
	}
}
