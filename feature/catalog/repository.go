package catalog

import (
	"context"
	"fmt"

	"catalog-manager/core/reconcile"
	"catalog-manager/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// saveBatchSize bounds the rows per INSERT statement.
	saveBatchSize = 200
	// deleteBatchSize bounds the IDs bound per DELETE statement.
	deleteBatchSize = 500
)

// Repository stores the catalog snapshot in the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the catalog table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.CatalogItemRecord{}); err != nil {
		return fmt.Errorf("failed to migrate catalog items: %w", err)
	}
	return nil
}

// LoadCatalog returns the stored snapshot in its original order.
func (r *Repository) LoadCatalog(ctx context.Context) ([]reconcile.CatalogItem, error) {
	var records []models.CatalogItemRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	items := make([]reconcile.CatalogItem, 0, len(records))
	for _, record := range records {
		items = append(items, record.ToItem())
	}
	return items, nil
}

// CountByStatus returns the number of stored items per status.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.CatalogItemRecord{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog items: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// SaveCatalog replaces the stored snapshot with items in one transaction.
// Rows are upserted by ID; stored rows whose ID is not in items are removed in
// bounded batches.
func (r *Repository) SaveCatalog(ctx context.Context, items []reconcile.CatalogItem) error {
	records := make([]models.CatalogItemRecord, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		// A duplicate ID would hit the same row twice inside one statement.
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		records = append(records, models.FromItem(item, i))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored []string
		if err := tx.Model(&models.CatalogItemRecord{}).Pluck("id", &stored).Error; err != nil {
			return fmt.Errorf("failed to list stored items: %w", err)
		}

		var stale []string
		for _, id := range stored {
			if _, keep := seen[id]; !keep {
				stale = append(stale, id)
			}
		}
		for start := 0; start < len(stale); start += deleteBatchSize {
			end := min(start+deleteBatchSize, len(stale))
			if err := tx.Where("id IN ?", stale[start:end]).Delete(&models.CatalogItemRecord{}).Error; err != nil {
				return fmt.Errorf("failed to remove stale items: %w", err)
			}
		}

		if len(records) == 0 {
			return nil
		}
		err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			CreateInBatches(&records, saveBatchSize).Error
		if err != nil {
			return fmt.Errorf("failed to upsert items: %w", err)
		}
		return nil
	})
}
