package managers

import (
	"context"
	"fmt"

	"staffbot/internal/models"
	"staffbot/internal/tracker"
)

// fakeTracker is an in-memory tracker.API used across the manager tests.
type fakeTracker struct {
	issues   map[string]models.Issue
	comments map[string][]string

	created int
	updates []tracker.IssuePatch

	searchResults []models.Issue
	lastQuery     string

	createErr error
	getErr    error
	updateErr error
	searchErr error
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{
		issues:   make(map[string]models.Issue),
		comments: make(map[string][]string),
	}
}

func (f *fakeTracker) CreateIssue(_ context.Context, issue models.Issue) (models.Issue, error) {
	if f.createErr != nil {
		return models.Issue{}, f.createErr
	}
	f.created++
	issue.Key = fmt.Sprintf("%s-%d", issue.Queue, f.created)
	f.issues[issue.Key] = issue
	return issue, nil
}

func (f *fakeTracker) GetIssue(_ context.Context, key string) (models.Issue, error) {
	if f.getErr != nil {
		return models.Issue{}, f.getErr
	}
	issue, ok := f.issues[key]
	if !ok {
		return models.Issue{}, &tracker.UpstreamError{StatusCode: 404, Body: "issue not found"}
	}
	return issue, nil
}

func (f *fakeTracker) UpdateIssue(_ context.Context, key string, patch tracker.IssuePatch) (models.Issue, error) {
	if f.updateErr != nil {
		return models.Issue{}, f.updateErr
	}
	f.updates = append(f.updates, patch)
	issue := f.issues[key]
	issue.Key = key
	if patch.Summary != "" {
		issue.Summary = patch.Summary
	}
	if issue.CustomFields == nil {
		issue.CustomFields = make(map[string]any)
	}
	for k, v := range patch.CustomFields {
		issue.CustomFields[k] = v
	}
	f.issues[key] = issue
	return issue, nil
}

func (f *fakeTracker) SearchIssues(_ context.Context, query string) ([]models.Issue, error) {
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeTracker) AddComment(_ context.Context, key, text string) error {
	f.comments[key] = append(f.comments[key], text)
	return nil
}
