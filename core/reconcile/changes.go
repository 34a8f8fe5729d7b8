package reconcile

// changeLog accumulates change records in emission order.
// Items are referenced by ID and snapshotted when the log is materialized,
// so every record reflects the final state of its item.
type changeLog struct {
	entries []changeEntry
	byItem  map[string]int
}

type changeEntry struct {
	kind   ChangeType
	itemID string
	diffs  []FieldDiff
}

func newChangeLog() *changeLog {
	return &changeLog{byItem: make(map[string]int)}
}

// created records a synthesized item.
func (l *changeLog) created(itemID string) {
	l.byItem[itemID] = len(l.entries)
	l.entries = append(l.entries, changeEntry{kind: ChangeNew, itemID: itemID})
}

// updated records field modifications of an existing item. Empty diff lists are ignored.
func (l *changeLog) updated(itemID string, diffs []FieldDiff) {
	if len(diffs) == 0 {
		return
	}
	l.byItem[itemID] = len(l.entries)
	l.entries = append(l.entries, changeEntry{kind: ChangeUpdate, itemID: itemID, diffs: diffs})
}

// merge appends a diff to the UPDATE record of the item, creating the record if needed.
func (l *changeLog) merge(itemID string, diff FieldDiff) {
	if i, ok := l.byItem[itemID]; ok && l.entries[i].kind == ChangeUpdate {
		l.entries[i].diffs = append(l.entries[i].diffs, diff)
		return
	}
	l.updated(itemID, []FieldDiff{diff})
}

// records materializes the log against the final catalog state.
func (l *changeLog) records(items map[string]*CatalogItem) []ChangeRecord {
	records := make([]ChangeRecord, 0, len(l.entries))
	for _, entry := range l.entries {
		record := ChangeRecord{Type: entry.kind, ItemID: entry.itemID, Diffs: entry.diffs}
		if item, ok := items[entry.itemID]; ok {
			record.Item = item.Clone()
		}
		records = append(records, record)
	}
	return records
}

// diffSet collects the diffs of a single item in check order.
type diffSet []FieldDiff

func (d *diffSet) add(field string, oldValue, newValue any) {
	*d = append(*d, FieldDiff{Field: field, OldValue: oldValue, NewValue: newValue})
}

// setString assigns value to *field and records a diff when they differ.
func (d *diffSet) setString(name string, field *string, value string) {
	if *field == value {
		return
	}
	d.add(name, *field, value)
	*field = value
}

func (d *diffSet) setInt(name string, field *int, value int) {
	if *field == value {
		return
	}
	d.add(name, *field, value)
	*field = value
}
