package reconcile

import (
	"strings"

	"github.com/google/uuid"
)

// Reconcile merges the backend feed and the campaign code map into the local catalog.
// It runs four phases in fixed order: archive items missing from the feed, update
// matched items, create items for unmatched records, and enrich every item with its
// campaign code. The local slice is never modified; the merged catalog and the
// ordered change list are returned in the Result.
func Reconcile(local []CatalogItem, records []SourceRecord, codes CampaignCodeMap, opts Options) *Result {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.DefaultBrand == "" {
		opts.DefaultBrand = NoCommercialCode
	}

	// Work on a deep copy so callers keep their snapshot.
	catalog := make([]*CatalogItem, 0, len(local)+len(records))
	originalIDs := make(map[string]struct{}, len(local))
	for _, item := range local {
		working := item.Clone()
		catalog = append(catalog, &working)
		originalIDs[item.ID] = struct{}{}
	}

	index, warnings := BuildCatalogIndex(catalog)
	sourceCodes, sourceWarnings := BuildSourceCodeSet(records)
	warnings = append(warnings, sourceWarnings...)

	changes := newChangeLog()

	archiveMissing(catalog, sourceCodes, changes)

	unmatched := updateMatched(uniqueRecords(records), index, opts, changes)

	for _, record := range unmatched {
		item := newItemFromRecord(record, opts)
		catalog = append(catalog, item)
		changes.created(item.ID)
	}

	enrichCommercialCodes(catalog, codes, originalIDs, changes)

	byID := make(map[string]*CatalogItem, len(catalog))
	merged := make([]CatalogItem, 0, len(catalog))
	for _, item := range catalog {
		if _, exists := byID[item.ID]; !exists {
			byID[item.ID] = item
		}
		merged = append(merged, *item)
	}

	return &Result{
		Catalog:  merged,
		Changes:  changes.records(byID),
		Warnings: warnings,
	}
}

// archiveMissing archives linked items whose code is absent from the feed.
func archiveMissing(catalog []*CatalogItem, sourceCodes map[string]struct{}, changes *changeLog) {
	for _, item := range catalog {
		key := Normalize(item.RemoteCode)
		if key == "" {
			continue
		}
		if _, present := sourceCodes[key]; present {
			continue
		}
		if item.Status == StatusArchived {
			continue
		}

		previous := item.Status
		item.Status = StatusArchived
		changes.updated(item.ID, []FieldDiff{{Field: "status", OldValue: string(previous), NewValue: string(StatusArchived)}})
	}
}

// updateMatched applies backend values to matched items and returns the records
// that have no local counterpart.
func updateMatched(records []SourceRecord, index map[string]*CatalogItem, opts Options, changes *changeLog) []SourceRecord {
	var unmatched []SourceRecord

	for _, record := range records {
		item, found := index[Normalize(record.Code)]
		if !found {
			unmatched = append(unmatched, record)
			continue
		}

		var diffs diffSet
		if item.Status != StatusActive {
			diffs.add("status", string(item.Status), string(StatusActive))
			item.Status = StatusActive
		}
		diffs.setString("remote_code", &item.RemoteCode, record.Code)
		diffs.setString("title", &item.Title, record.Name)
		diffs.setString("description", &item.Description, record.Description)
		diffs.setString("price", &item.Price, record.OriginalPrice)
		diffs.setString("sale_price", &item.SalePrice, record.SalePrice)
		diffs.setString("image_link", &item.ImageLink, record.ImageURL)
		diffs.setString("additional_image_link", &item.AdditionalImageLink, record.SecondImageURL)
		diffs.setString("link", &item.Link, record.URL)
		if !opts.IgnoreStock {
			diffs.setInt("quantity", &item.Quantity, record.TotalStock)
			diffs.setString("availability", &item.Availability, availabilityFor(record.TotalStock))
		}
		diffs.setString("summary", &item.Summary, record.Summary)

		changes.updated(item.ID, diffs)
	}

	return unmatched
}

// newItemFromRecord synthesizes a catalog item for an unmatched backend record.
func newItemFromRecord(record SourceRecord, opts Options) *CatalogItem {
	return &CatalogItem{
		ID:                  opts.NewID(),
		RemoteCode:          record.Code,
		CommercialCode:      NoCommercialCode,
		Title:               record.Name,
		Description:         record.Description,
		Summary:             record.Summary,
		Price:               record.OriginalPrice,
		SalePrice:           record.SalePrice,
		ImageLink:           record.ImageURL,
		AdditionalImageLink: record.SecondImageURL,
		Link:                record.URL,
		Quantity:            record.TotalStock,
		Availability:        availabilityFor(record.TotalStock),
		Condition:           ConditionNew,
		Brand:               opts.DefaultBrand,
		ProductType:         record.Category,
		Status:              StatusActive,
	}
}

// enrichCommercialCodes assigns campaign codes to every item. Only items of the
// original snapshot are reported; synthesized items are already covered by their
// NEW record.
func enrichCommercialCodes(catalog []*CatalogItem, codes CampaignCodeMap, originalIDs map[string]struct{}, changes *changeLog) {
	for _, item := range catalog {
		newCode, found := codes[strings.TrimSpace(item.ID)]
		if !found || newCode == "" {
			newCode = NoCommercialCode
		}

		oldCode := item.CommercialCode
		if oldCode == newCode {
			continue
		}
		item.CommercialCode = newCode

		if _, original := originalIDs[item.ID]; !original {
			continue
		}
		changes.merge(item.ID, FieldDiff{Field: "commercial_code", OldValue: oldCode, NewValue: newCode})
	}
}

func availabilityFor(stock int) string {
	if stock > 0 {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}
