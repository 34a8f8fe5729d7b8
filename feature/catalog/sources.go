package catalog

import (
	"context"

	"catalog-manager/core/reconcile"
)

// RecordFetcher fetches the backend records of one category.
type RecordFetcher interface {
	FetchRecords(ctx context.Context, category string) ([]reconcile.SourceRecord, error)
}

// CodeFetcher fetches the campaign code map.
type CodeFetcher interface {
	FetchCampaignCodes(ctx context.Context) (reconcile.CampaignCodeMap, error)
}

// Sources joins the backend feed and the campaign sheet into reconcile.Sources.
type Sources struct {
	records RecordFetcher
	codes   CodeFetcher
}

// NewSources combines a record fetcher and a campaign code fetcher.
func NewSources(records RecordFetcher, codes CodeFetcher) *Sources {
	return &Sources{records: records, codes: codes}
}

// FetchRecords implements reconcile.Sources.
func (s *Sources) FetchRecords(ctx context.Context, category string) ([]reconcile.SourceRecord, error) {
	return s.records.FetchRecords(ctx, category)
}

// FetchCampaignCodes implements reconcile.Sources.
func (s *Sources) FetchCampaignCodes(ctx context.Context) (reconcile.CampaignCodeMap, error) {
	return s.codes.FetchCampaignCodes(ctx)
}
