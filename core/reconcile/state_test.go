package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	tests := []struct {
		name   string
		record ChangeRecord
		want   ItemState
	}{
		{
			name:   "New record",
			record: ChangeRecord{Type: ChangeNew},
			want:   StateNew,
		},
		{
			name:   "Archive only",
			record: ChangeRecord{Type: ChangeUpdate, Diffs: []FieldDiff{{Field: "status", OldValue: "active", NewValue: "archived"}}},
			want:   StateArchived,
		},
		{
			name:   "Campaign code only",
			record: ChangeRecord{Type: ChangeUpdate, Diffs: []FieldDiff{{Field: "commercial_code", OldValue: "N/A", NewValue: "C1"}}},
			want:   StateUpdated,
		},
		{
			name: "Archive plus campaign code",
			record: ChangeRecord{Type: ChangeUpdate, Diffs: []FieldDiff{
				{Field: "status", OldValue: "active", NewValue: "archived"},
				{Field: "commercial_code", OldValue: "C1", NewValue: "N/A"},
			}},
			want: StateUpdated,
		},
		{
			name: "Feed change plus campaign code",
			record: ChangeRecord{Type: ChangeUpdate, Diffs: []FieldDiff{
				{Field: "title", OldValue: "a", NewValue: "b"},
				{Field: "commercial_code", OldValue: "N/A", NewValue: "C1"},
			}},
			want: StateChanged,
		},
		{
			name:   "Reactivation is a change",
			record: ChangeRecord{Type: ChangeUpdate, Diffs: []FieldDiff{{Field: "status", OldValue: "archived", NewValue: "active"}}},
			want:   StateChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.record))
		})
	}
}

// TestItemStates_Precedence tests that new beats changed beats updated beats archived.
func TestItemStates_Precedence(t *testing.T) {
	changes := []ChangeRecord{
		{Type: ChangeUpdate, ItemID: "x", Diffs: []FieldDiff{{Field: "commercial_code"}}},
		{Type: ChangeNew, ItemID: "x"},
		{Type: ChangeUpdate, ItemID: "y", Diffs: []FieldDiff{{Field: "status", NewValue: "archived"}}},
		{Type: ChangeUpdate, ItemID: "y", Diffs: []FieldDiff{{Field: "commercial_code"}}},
		{Type: ChangeUpdate, ItemID: "z", Diffs: []FieldDiff{{Field: "status", NewValue: "archived"}}},
	}

	states := ItemStates(changes)

	assert.Equal(t, map[string]ItemState{
		"x": StateNew,
		"y": StateUpdated,
		"z": StateArchived,
	}, states)
}
