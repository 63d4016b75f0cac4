package managers

import (
	"context"
	"errors"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// ErrNoAvailableSlots is returned when a request already has every slot taken.
var ErrNoAvailableSlots = errors.New("request has no available slots")

// RequestManager maps staffing requests to REQ issues.
type RequestManager struct {
	tracker tracker.API
}

func NewRequestManager(api tracker.API) *RequestManager {
	return &RequestManager{tracker: api}
}

func (m *RequestManager) Create(ctx context.Context, req models.Request) (models.Request, error) {
	applied := req.AppliedEmployees
	if applied == nil {
		applied = []string{}
	}
	status := req.Status
	if status == "" {
		status = "open"
	}
	issue, err := m.tracker.CreateIssue(ctx, models.Issue{
		Queue:       models.QueueRequests,
		Summary:     fmt.Sprintf("Заявка: %s", req.Title),
		Description: req.Description,
		Type:        models.IssueTypeTask,
		CustomFields: map[string]any{
			"title":             req.Title,
			"requester":         req.Requester,
			"requesterName":     req.RequesterName,
			"object":            req.Object,
			"requiredEmployees": req.RequiredEmployees,
			// A fresh request has every slot free.
			"availableSlots":   req.RequiredEmployees,
			"appliedEmployees": applied,
			"status":           status,
		},
	})
	if err != nil {
		return models.Request{}, fmt.Errorf("create request: %w", err)
	}
	return requestFromIssue(issue), nil
}

func (m *RequestManager) Get(ctx context.Context, key string) (models.Request, error) {
	issue, err := m.tracker.GetIssue(ctx, key)
	if err != nil {
		return models.Request{}, fmt.Errorf("get request: %w", err)
	}
	return requestFromIssue(issue), nil
}

// Search lists requests, optionally narrowed by extra query criteria.
func (m *RequestManager) Search(ctx context.Context, criteria string) ([]models.Request, error) {
	query := "Queue: " + models.QueueRequests
	if criteria != "" {
		query += " " + criteria
	}
	issues, err := m.tracker.SearchIssues(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search requests: %w", err)
	}
	requests := make([]models.Request, 0, len(issues))
	for _, issue := range issues {
		requests = append(requests, requestFromIssue(issue))
	}
	return requests, nil
}

// UpdateSlots overwrites the stored availableSlots value.
func (m *RequestManager) UpdateSlots(ctx context.Context, key string, slots int) (models.Request, error) {
	issue, err := m.tracker.UpdateIssue(ctx, key, tracker.IssuePatch{
		CustomFields: map[string]any{
			"availableSlots": slots,
		},
	})
	if err != nil {
		return models.Request{}, fmt.Errorf("update request slots: %w", err)
	}
	return requestFromIssue(issue), nil
}

// AddEmployeeToRequest appends the employee to the request's applied set and
// recomputes the free-slot count. Adding an already-applied employee is a
// no-op. The read-then-write is not transactional: two concurrent adds to the
// same request can interleave, and the last write wins. Slots are re-derived
// from required minus applied, so the stored value can never go negative.
func (m *RequestManager) AddEmployeeToRequest(ctx context.Context, requestKey, employeeKey string) (models.Request, error) {
	req, err := m.Get(ctx, requestKey)
	if err != nil {
		return models.Request{}, err
	}

	for _, applied := range req.AppliedEmployees {
		if applied == employeeKey {
			return req, nil
		}
	}

	if req.AvailableSlots <= 0 {
		return req, ErrNoAvailableSlots
	}

	applied := append(req.AppliedEmployees, employeeKey)
	slots := req.RequiredEmployees - len(applied)
	if slots < 0 {
		slots = 0
	}

	issue, err := m.tracker.UpdateIssue(ctx, requestKey, tracker.IssuePatch{
		CustomFields: map[string]any{
			"appliedEmployees": applied,
			"availableSlots":   slots,
		},
	})
	if err != nil {
		return models.Request{}, fmt.Errorf("add employee to request: %w", err)
	}
	return requestFromIssue(issue), nil
}

func requestFromIssue(issue models.Issue) models.Request {
	f := issue.CustomFields
	return models.Request{
		Key:               issue.Key,
		Title:             strField(f, "title"),
		Description:       issue.Description,
		Requester:         strField(f, "requester"),
		RequesterName:     strField(f, "requesterName"),
		Object:            strField(f, "object"),
		RequiredEmployees: intField(f, "requiredEmployees"),
		AvailableSlots:    intField(f, "availableSlots"),
		AppliedEmployees:  listField(f, "appliedEmployees"),
		Status:            strField(f, "status"),
	}
}
