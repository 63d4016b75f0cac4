package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// Shift statuses as stored in the tracker.
const (
	ShiftStatusPlanned    = "planned"
	ShiftStatusInProgress = "in_progress"
	ShiftStatusCompleted  = "completed"
)

// ShiftManager maps shift records to SHIFT issues.
type ShiftManager struct {
	tracker tracker.API
}

func NewShiftManager(api tracker.API) *ShiftManager {
	return &ShiftManager{tracker: api}
}

func (m *ShiftManager) Create(ctx context.Context, shift models.Shift) (models.Shift, error) {
	status := shift.Status
	if status == "" {
		status = ShiftStatusPlanned
	}
	taken := shift.EquipmentTaken
	if taken == nil {
		taken = []string{}
	}
	returned := shift.EquipmentReturned
	if returned == nil {
		returned = []string{}
	}
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:       models.QueueShifts,
		Summary:     fmt.Sprintf("Смена: %s - %s", shift.Date, shift.EmployeeName),
		Description: "Карточка смены",
		Type:        models.IssueTypeTask,
		CustomFields: map[string]any{
			"date":              shift.Date,
			"employee":          shift.Employee,
			"employeeName":      shift.EmployeeName,
			"startTime":         shift.StartTime,
			"endTime":           shift.EndTime,
			"vestNumber":        shift.VestNumber,
			"overtime":          shift.Overtime,
			"nonProfileHours":   shift.NonProfileHours,
			"equipmentTaken":    taken,
			"equipmentReturned": returned,
			"status":            status,
		},
	})
	if err != nil {
		return models.Shift{}, fmt.Errorf("create shift: %w", err)
	}
	return shiftFromIssue(issue), nil
}

func (m *ShiftManager) Get(ctx context.Context, key string) (models.Shift, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.Shift{}, fmt.Errorf("get shift: %w", err)
	}
	return shiftFromIssue(issue), nil
}

// Close marks an open shift completed and records its end time.
func (m *ShiftManager) Close(ctx context.Context, key, endTime string) (models.Shift, error) {
	issue, err := m.tracker.UpdateIssue(ctx, key, tracker.IssuePatch{
		CustomFields: map[string]any{
			"endTime": endTime,
			"status":  ShiftStatusCompleted,
		},
	})
	if err != nil {
		return models.Shift{}, fmt.Errorf("close shift: %w", err)
	}
	return shiftFromIssue(issue), nil
}

func shiftFromIssue(issue models.Issue) models.Shift {
	f := issue.CustomFields
	return models.Shift{
		Key:               issue.Key,
		Date:              strField(f, "date"),
		Employee:          strField(f, "employee"),
		EmployeeName:      strField(f, "employeeName"),
		StartTime:         strField(f, "startTime"),
		EndTime:           strField(f, "endTime"),
		VestNumber:        strField(f, "vestNumber"),
		Overtime:          strField(f, "overtime"),
		NonProfileHours:   strField(f, "nonProfileHours"),
		EquipmentTaken:    listField(f, "equipmentTaken"),
		EquipmentReturned: listField(f, "equipmentReturned"),
		Status:            strField(f, "status"),
	}
}
