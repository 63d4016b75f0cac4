package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// WarehouseManager maps warehouse records to WH issues.
type WarehouseManager struct {
	tracker tracker.API
}

func NewWarehouseManager(api tracker.API) *WarehouseManager {
	return &WarehouseManager{tracker: api}
}

func (m *WarehouseManager) Create(ctx context.Context, wh models.Warehouse) (models.Warehouse, error) {
	synonyms := wh.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:       models.QueueWarehouses,
		Summary:     fmt.Sprintf("Склад: %s", wh.Name),
		Description: "Карточка склада",
		Type:        models.IssueTypeTask,
		CustomFields: map[string]any{
			"name":              wh.Name,
			"synonyms":          synonyms,
			"partnerChatId":     wh.PartnerChatID,
			"partnerChatLink":   wh.PartnerChatLink,
			"warehouseChatId":   wh.WarehouseChatID,
			"warehouseChatLink": wh.WarehouseChatLink,
			"legalEntity":       wh.LegalEntity,
			"area":              wh.Area,
			"selfOperated":      wh.SelfOperated,
			"openingDate":       wh.OpeningDate,
			"closingDate":       wh.ClosingDate,
			"status":            wh.Status,
			"tgCs":              wh.TgCS,
			"phone":             wh.Phone,
			"workAccount":       wh.WorkAccount,
		},
	})
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("create warehouse: %w", err)
	}
	return warehouseFromIssue(issue), nil
}

func (m *WarehouseManager) Get(ctx context.Context, key string) (models.Warehouse, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("get warehouse: %w", err)
	}
	return warehouseFromIssue(issue), nil
}

func warehouseFromIssue(issue models.Issue) models.Warehouse {
	f := issue.CustomFields
	return models.Warehouse{
		Key:               issue.Key,
		Name:              strField(f, "name"),
		Synonyms:          listField(f, "synonyms"),
		PartnerChatID:     strField(f, "partnerChatId"),
		PartnerChatLink:   strField(f, "partnerChatLink"),
		WarehouseChatID:   strField(f, "warehouseChatId"),
		WarehouseChatLink: strField(f, "warehouseChatLink"),
		LegalEntity:       strField(f, "legalEntity"),
		Area:              strField(f, "area"),
		SelfOperated:      strField(f, "selfOperated"),
		OpeningDate:       strField(f, "openingDate"),
		ClosingDate:       strField(f, "closingDate"),
		Status:            strField(f, "status"),
		TgCS:              strField(f, "tgCs"),
		Phone:             strField(f, "phone"),
		WorkAccount:       strField(f, "workAccount"),
	}
}
