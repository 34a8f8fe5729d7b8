package reconcile

import (
	"maps"
	"time"
)

// Status is the lifecycle state of a catalog item.
type Status string

const (
	// StatusActive marks an item present in the backend feed.
	StatusActive Status = "active"
	// StatusArchived marks an item that disappeared from the backend feed.
	StatusArchived Status = "archived"
	// StatusNew marks an item imported but never reconciled.
	StatusNew Status = "new"
)

const (
	// NoCommercialCode is the placeholder used when no campaign code is assigned.
	NoCommercialCode = "N/A"
	// ConditionNew is the condition assigned to synthesized items.
	ConditionNew = "new"
	// AvailabilityInStock is derived from a positive stock level.
	AvailabilityInStock = "in stock"
	// AvailabilityOutOfStock is derived from a zero or negative stock level.
	AvailabilityOutOfStock = "out of stock"
)

// CatalogItem is one product entry of the merged catalog.
// Fields not owned by the reconciler travel untouched in Extras.
type CatalogItem struct {
	// ID is the stable identity of the item within a snapshot.
	ID string `json:"id"`

	// RemoteCode is the backend business code, empty when the item is unlinked.
	RemoteCode string `json:"remote_code"`

	// CommercialCode is the per-campaign code, NoCommercialCode when unassigned.
	CommercialCode string `json:"commercial_code"`

	Title               string `json:"title"`
	Description         string `json:"description"`
	Summary             string `json:"summary"`
	Price               string `json:"price"`
	SalePrice           string `json:"sale_price"`
	ImageLink           string `json:"image_link"`
	AdditionalImageLink string `json:"additional_image_link"`
	Link                string `json:"link"`
	Quantity            int    `json:"quantity"`
	Availability        string `json:"availability"`
	Condition           string `json:"condition"`
	Brand               string `json:"brand"`
	ProductType         string `json:"product_type"`
	Status              Status `json:"status"`

	// Extras holds feed-specific attributes whose schema is not fixed here.
	Extras map[string]any `json:"extras,omitempty"`
}

// Clone returns a copy of the item that shares no mutable state with it.
func (c CatalogItem) Clone() CatalogItem {
	if c.Extras != nil {
		c.Extras = maps.Clone(c.Extras)
	}
	return c
}

// SourceRecord is one record of the authoritative backend feed.
type SourceRecord struct {
	// Category is the configured category this record was fetched for.
	Category string `json:"category"`

	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OriginalPrice  string `json:"original_price"`
	SalePrice      string `json:"sale_price"`
	ImageURL       string `json:"image_url"`
	SecondImageURL string `json:"second_image_url"`
	URL            string `json:"url"`
	TotalStock     int    `json:"total_stock"`
	Summary        string `json:"summary"`
}

// CampaignCodeMap maps a trimmed item ID to its campaign code.
type CampaignCodeMap map[string]string

// ChangeType distinguishes created items from modified ones.
type ChangeType string

const (
	// ChangeNew reports an item synthesized from the backend feed.
	ChangeNew ChangeType = "NEW"
	// ChangeUpdate reports field-level modifications of an existing item.
	ChangeUpdate ChangeType = "UPDATE"
)

// FieldDiff is a single field modification.
type FieldDiff struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// ChangeRecord is one audit entry of a reconciliation run.
type ChangeRecord struct {
	Type ChangeType `json:"type"`

	// ItemID is the ID of the affected item.
	ItemID string `json:"item_id"`

	// Item is the state of the item at the end of the run.
	Item CatalogItem `json:"item"`

	// Diffs is empty for ChangeNew records.
	Diffs []FieldDiff `json:"diffs,omitempty"`
}

// WarningKind classifies a non-fatal data-quality anomaly.
type WarningKind string

const (
	WarnDuplicateLocalCode  WarningKind = "duplicate_local_code"
	WarnMissingRemoteCode   WarningKind = "missing_remote_code"
	WarnDuplicateSourceCode WarningKind = "duplicate_source_code"
	WarnMissingSourceCode   WarningKind = "missing_source_code"
)

// Warning describes a data-quality anomaly resolved deterministically.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	ItemID string      `json:"item_id,omitempty"`
	Code   string      `json:"code,omitempty"`
}

// Options controls a reconciliation run.
type Options struct {
	// IgnoreStock disables propagation of quantity and availability for matched items.
	IgnoreStock bool

	// DefaultBrand is assigned to synthesized items. Defaults to "N/A".
	DefaultBrand string

	// NewID generates IDs for synthesized items. Defaults to uuid.NewString.
	NewID func() string
}

// Result is the output of a reconciliation run.
type Result struct {
	Catalog  []CatalogItem  `json:"updated_catalog"`
	Changes  []ChangeRecord `json:"changes"`
	Warnings []Warning      `json:"warnings"`
}

// ItemState is the review label derived for an item from the change list.
type ItemState string

const (
	StateNew      ItemState = "new"
	StateChanged  ItemState = "changed"
	StateUpdated  ItemState = "updated"
	StateArchived ItemState = "archived"
)

// ReconcilePlan bundles a reconciliation result for review before it is persisted.
type ReconcilePlan struct {
	// ID identifies the plan for a later apply.
	ID string `json:"id"`

	// CreatedAt is when the plan was built.
	CreatedAt time.Time `json:"created_at"`

	Catalog  []CatalogItem        `json:"updated_catalog"`
	Changes  []ChangeRecord       `json:"changes"`
	Warnings []Warning            `json:"warnings"`
	States   map[string]ItemState `json:"states"`
	Summary  PlanSummary          `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	// TotalItems is the size of the merged catalog.
	TotalItems int `json:"total_items"`

	// Created counts NEW records.
	Created int `json:"created"`

	// Updated counts UPDATE records.
	Updated int `json:"updated"`

	// Archived counts items transitioned to archived.
	Archived int `json:"archived"`

	// Enriched counts commercial_code diffs.
	Enriched int `json:"enriched"`

	// Warnings counts data-quality anomalies.
	Warnings int `json:"warnings"`
}

// ApplyOptions controls whether a plan is persisted.
type ApplyOptions struct {
	// DryRun prevents persisting if true.
	DryRun bool

	// Confirmed indicates the reviewer approved the plan.
	// If false, nothing is persisted regardless of DryRun.
	Confirmed bool
}
