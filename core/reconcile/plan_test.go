package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockPersister is a mock implementation of Persister
type mockPersister struct {
	mock.Mock
}

func (m *mockPersister) SaveCatalog(ctx context.Context, items []CatalogItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// TestBuildPlan_Summary tests that summary counts follow the change list.
func TestBuildPlan_Summary(t *testing.T) {
	local := []CatalogItem{
		{ID: "archive", RemoteCode: "GONE", CommercialCode: NoCommercialCode, Status: StatusActive},
		{ID: "update", RemoteCode: "U1", CommercialCode: NoCommercialCode, Status: StatusActive},
		{ID: "enrich", CommercialCode: NoCommercialCode, Status: StatusActive},
	}
	records := []SourceRecord{{Code: "U1", Name: "x"}, {Code: "N1"}}

	result := Reconcile(local, records, CampaignCodeMap{"enrich": "E", "update": "U"}, Options{IgnoreStock: true, NewID: sequentialIDs()})
	plan := BuildPlan(result)

	assert.NotEmpty(t, plan.ID)
	assert.False(t, plan.CreatedAt.IsZero())
	assert.Equal(t, PlanSummary{
		TotalItems: 4,
		Created:    1,
		Updated:    3,
		Archived:   1,
		Enriched:   2,
		Warnings:   1,
	}, plan.Summary)
	assert.Equal(t, map[string]ItemState{
		"archive": StateArchived,
		"update":  StateChanged,
		"enrich":  StateUpdated,
		"new-1":   StateNew,
	}, plan.States)
}

// TestApplyPlan_Safety tests that nothing is persisted unless confirmed and not dry-run.
func TestApplyPlan_Safety(t *testing.T) {
	tests := []struct {
		name string
		opts ApplyOptions
	}{
		{"Not confirmed", ApplyOptions{}},
		{"Dry run", ApplyOptions{Confirmed: true, DryRun: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			persister := new(mockPersister)
			plan := &ReconcilePlan{ID: "p", Catalog: []CatalogItem{{ID: "1"}}}

			written, err := ApplyPlan(context.Background(), persister, plan, tt.opts)
			assert.NoError(t, err)
			assert.Equal(t, 0, written)
			persister.AssertNotCalled(t, "SaveCatalog", mock.Anything, mock.Anything)
		})
	}
}

// TestApplyPlan_Persists tests that a confirmed plan is written.
func TestApplyPlan_Persists(t *testing.T) {
	persister := new(mockPersister)
	items := []CatalogItem{{ID: "1"}, {ID: "2"}}
	persister.On("SaveCatalog", mock.Anything, items).Return(nil)

	written, err := ApplyPlan(context.Background(), persister, &ReconcilePlan{ID: "p", Catalog: items}, ApplyOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	persister.AssertExpectations(t)
}

// TestApplyPlan_Error tests that persistence errors are wrapped.
func TestApplyPlan_Error(t *testing.T) {
	persister := new(mockPersister)
	boom := errors.New("db down")
	persister.On("SaveCatalog", mock.Anything, mock.Anything).Return(boom)

	written, err := ApplyPlan(context.Background(), persister, &ReconcilePlan{ID: "p"}, ApplyOptions{Confirmed: true})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "plan p")
	assert.Equal(t, 0, written)
}

func TestApplyPlan_NilPlan(t *testing.T) {
	_, err := ApplyPlan(context.Background(), new(mockPersister), nil, ApplyOptions{Confirmed: true})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
