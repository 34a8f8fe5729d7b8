package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSources is a simple test source
type mockSources struct {
	records   map[string][]SourceRecord
	codes     CampaignCodeMap
	recordErr map[string]error
	codesErr  error
	calls     atomic.Int32
}

func (m *mockSources) FetchRecords(ctx context.Context, category string) ([]SourceRecord, error) {
	m.calls.Add(1)
	if err := m.recordErr[category]; err != nil {
		return nil, err
	}
	return m.records[category], nil
}

func (m *mockSources) FetchCampaignCodes(ctx context.Context) (CampaignCodeMap, error) {
	m.calls.Add(1)
	if m.codesErr != nil {
		return nil, m.codesErr
	}
	return m.codes, nil
}

// TestLoadInputs_TagsAndOrders tests that records are tagged and kept in category order.
func TestLoadInputs_TagsAndOrders(t *testing.T) {
	src := &mockSources{
		records: map[string][]SourceRecord{
			"shoes": {{Code: "S1"}, {Code: "S2"}},
			"bags":  {{Code: "B1"}},
		},
		codes: CampaignCodeMap{"1": "C1"},
	}

	inputs, err := LoadInputs(context.Background(), src, []string{"shoes", "bags"})
	require.NoError(t, err)

	require.Len(t, inputs.Records, 3)
	assert.Equal(t, SourceRecord{Code: "S1", Category: "shoes"}, inputs.Records[0])
	assert.Equal(t, SourceRecord{Code: "S2", Category: "shoes"}, inputs.Records[1])
	assert.Equal(t, SourceRecord{Code: "B1", Category: "bags"}, inputs.Records[2])
	assert.Equal(t, CampaignCodeMap{"1": "C1"}, inputs.CampaignCodes)
	assert.Equal(t, int32(3), src.calls.Load())
}

// TestLoadInputs_ErrorHandling tests that any failed fetch fails the whole load.
func TestLoadInputs_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		recordErr  map[string]error
		codesErr   error
		wantSource string
	}{
		{
			name:       "Records fetch error",
			recordErr:  map[string]error{"bags": errors.New("backend down")},
			wantSource: "records:bags",
		},
		{
			name:       "Campaign fetch error",
			codesErr:   errors.New("sheet unavailable"),
			wantSource: "campaign_codes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &mockSources{
				records:   map[string][]SourceRecord{"shoes": {{Code: "S1"}}},
				recordErr: tt.recordErr,
				codesErr:  tt.codesErr,
			}

			inputs, err := LoadInputs(context.Background(), src, []string{"shoes", "bags"})
			assert.Nil(t, inputs)
			require.Error(t, err)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantSource, fetchErr.Source)
		})
	}
}

// TestLoadInputs_NilCodes tests that a nil campaign map becomes an empty one.
func TestLoadInputs_NilCodes(t *testing.T) {
	inputs, err := LoadInputs(context.Background(), &mockSources{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, inputs.CampaignCodes)
	assert.Empty(t, inputs.Records)
}
