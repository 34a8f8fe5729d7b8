package reconcile

// BuildCatalogIndex maps the normalized remote code of every item to the item.
// On collisions the first item wins; unlinked items are left out.
func BuildCatalogIndex(items []*CatalogItem) (map[string]*CatalogItem, []Warning) {
	index := make(map[string]*CatalogItem, len(items))
	var warnings []Warning

	for _, item := range items {
		key := Normalize(item.RemoteCode)
		if key == "" {
			warnings = append(warnings, Warning{Kind: WarnMissingRemoteCode, ItemID: item.ID})
			continue
		}
		if _, exists := index[key]; exists {
			warnings = append(warnings, Warning{Kind: WarnDuplicateLocalCode, ItemID: item.ID, Code: item.RemoteCode})
			continue
		}
		index[key] = item
	}

	return index, warnings
}

// BuildSourceCodeSet returns the set of normalized codes present in the backend feed.
func BuildSourceCodeSet(records []SourceRecord) (map[string]struct{}, []Warning) {
	set := make(map[string]struct{}, len(records))
	var warnings []Warning

	for _, record := range records {
		key := Normalize(record.Code)
		if key == "" {
			warnings = append(warnings, Warning{Kind: WarnMissingSourceCode, Code: record.Code})
			continue
		}
		if _, exists := set[key]; exists {
			warnings = append(warnings, Warning{Kind: WarnDuplicateSourceCode, Code: record.Code})
			continue
		}
		set[key] = struct{}{}
	}

	return set, warnings
}

// uniqueRecords keeps the first record of every normalized code, in feed order.
// Records without a usable code are dropped; BuildSourceCodeSet reports both cases.
func uniqueRecords(records []SourceRecord) []SourceRecord {
	seen := make(map[string]struct{}, len(records))
	unique := make([]SourceRecord, 0, len(records))

	for _, record := range records {
		key := Normalize(record.Code)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, record)
	}

	return unique
}
