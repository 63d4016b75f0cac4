package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffbot/internal/models"
)

func seedRequest(ft *fakeTracker, key string, required int, applied []string, slots int) {
	appliedAny := make([]any, 0, len(applied))
	for _, a := range applied {
		appliedAny = append(appliedAny, a)
	}
	ft.issues[key] = models.Issue{
		Key:   key,
		Queue: models.QueueRequests,
		CustomFields: map[string]any{
			"title":             "Заявка на сотрудников",
			"object":            "Склад №1",
			"requiredEmployees": float64(required),
			"availableSlots":    float64(slots),
			"appliedEmployees":  appliedAny,
			"status":            "open",
		},
	}
}

func TestCreateRequestStartsWithAllSlotsFree(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)

	created, err := m.Create(context.Background(), models.Request{
		Title:             "Заявка на склад №1",
		Object:            "Склад №1",
		RequiredEmployees: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, created.RequiredEmployees)
	assert.Equal(t, 5, created.AvailableSlots)
	assert.Empty(t, created.AppliedEmployees)
	assert.Equal(t, "open", created.Status)
}

func TestAddEmployeeToRequest(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)
	seedRequest(ft, "REQ-1", 5, nil, 5)

	updated, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP-1"}, updated.AppliedEmployees)
	assert.Equal(t, 4, updated.AvailableSlots)
	assert.Len(t, ft.updates, 1)
}

func TestAddEmployeeToRequestDuplicateIsNoOp(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)
	seedRequest(ft, "REQ-1", 5, nil, 5)

	_, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-1")
	require.NoError(t, err)

	again, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP-1"}, again.AppliedEmployees)
	assert.Equal(t, 4, again.AvailableSlots)
	assert.Len(t, ft.updates, 1, "duplicate add must not write")
}

func TestAddEmployeeToRequestNoSlotsLeft(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)
	seedRequest(ft, "REQ-1", 1, []string{"EMP-1"}, 0)

	_, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-2")
	assert.ErrorIs(t, err, ErrNoAvailableSlots)
	assert.Empty(t, ft.updates)
}

func TestAddEmployeeToRequestSlotsNeverNegative(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)
	// Stored slot count drifted above what required minus applied allows.
	seedRequest(ft, "REQ-1", 2, []string{"EMP-1", "EMP-2"}, 1)

	updated, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-3")
	require.NoError(t, err)
	assert.Equal(t, 0, updated.AvailableSlots)
}

func TestAddEmployeeToRequestBeyondCapacity(t *testing.T) {
	ft := newFakeTracker()
	m := NewRequestManager(ft)
	seedRequest(ft, "REQ-1", 2, nil, 2)

	for i, emp := range []string{"EMP-1", "EMP-2"} {
		updated, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", emp)
		require.NoError(t, err)
		assert.Equal(t, 1-i, updated.AvailableSlots)
	}

	_, err := m.AddEmployeeToRequest(context.Background(), "REQ-1", "EMP-3")
	assert.ErrorIs(t, err, ErrNoAvailableSlots)

	final, err := m.Get(context.Background(), "REQ-1")
	require.NoError(t, err)
	assert.Equal(t, 0, final.AvailableSlots)
	assert.Len(t, final.AppliedEmployees, 2)
}

func TestSearchRequestsScopesQueryToQueue(t *testing.T) {
	ft := newFakeTracker()
	ft.searchResults = []models.Issue{
		{Key: "REQ-1", CustomFields: map[string]any{"title": "Заявка 1", "availableSlots": float64(3)}},
	}
	m := NewRequestManager(ft)

	requests, err := m.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Queue: REQ", ft.lastQuery)
	assert.Equal(t, 3, requests[0].AvailableSlots)
}
