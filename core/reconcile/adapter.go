package reconcile

import "context"

// Sources defines how reconciliation inputs are fetched.
// Implementations talk to the backend feed and the campaign code service;
// the engine itself performs no I/O.
type Sources interface {
	// FetchRecords returns the backend records of a single category.
	// It is a read-only call and may run concurrently with other fetches.
	FetchRecords(ctx context.Context, category string) ([]SourceRecord, error)

	// FetchCampaignCodes returns the campaign code map keyed by item ID.
	FetchCampaignCodes(ctx context.Context) (CampaignCodeMap, error)
}

// Persister writes an approved merged catalog back to storage.
type Persister interface {
	// SaveCatalog replaces the stored catalog with items, preserving their order.
	SaveCatalog(ctx context.Context, items []CatalogItem) error
}
