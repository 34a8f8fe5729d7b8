package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Inputs holds the materialized inputs of a reconciliation run.
type Inputs struct {
	// Records contains the backend records of every category, in category order.
	Records []SourceRecord

	// CampaignCodes maps item IDs to campaign codes.
	CampaignCodes CampaignCodeMap
}

// LoadInputs fetches the backend records of every category and the campaign code map
// concurrently and joins them. If any fetch fails, the remaining fetches are canceled
// and no partial inputs are returned.
func LoadInputs(ctx context.Context, src Sources, categories []string) (*Inputs, error) {
	var (
		perCategory = make([][]SourceRecord, len(categories))
		codes       CampaignCodeMap
	)

	g, gctx := errgroup.WithContext(ctx)

	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			records, err := src.FetchRecords(gctx, category)
			if err != nil {
				return &FetchError{Source: "records:" + category, Err: err}
			}
			for j := range records {
				records[j].Category = category
			}
			perCategory[i] = records
			return nil
		})
	}

	g.Go(func() error {
		fetched, err := src.FetchCampaignCodes(gctx)
		if err != nil {
			return &FetchError{Source: "campaign_codes", Err: err}
		}
		codes = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, records := range perCategory {
		total += len(records)
	}
	merged := make([]SourceRecord, 0, total)
	for _, records := range perCategory {
		merged = append(merged, records...)
	}

	if codes == nil {
		codes = CampaignCodeMap{}
	}

	return &Inputs{Records: merged, CampaignCodes: codes}, nil
}
