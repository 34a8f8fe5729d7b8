package catalog

import (
	"catalog-manager/core/campaign"
	"catalog-manager/core/config"
	"catalog-manager/core/feed"
	"catalog-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
}

// NewFeature wires the catalog feature from the application configuration.
func NewFeature(cfg *config.Config, db *gorm.DB, client storage.Client, logger *zap.Logger) *Feature {
	repo := NewRepository(db)
	sources := NewSources(feed.NewClient(cfg.Feed), campaign.NewSheet(client, cfg.Storage.Bucket, cfg.Campaign))
	svc := NewService(repo, sources, client, SettingsFromConfig(cfg), logger)
	return &Feature{repo: repo, handler: NewHandler(svc)}
}

// SettingsFromConfig derives service settings from the application configuration.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Categories:   cfg.Feed.CategoryList(),
		Options:      cfg.Reconcile.Options(),
		PlanTTL:      cfg.Reconcile.PlanTTL(),
		Bucket:       cfg.Storage.Bucket,
		ReportPrefix: cfg.Storage.ReportPrefix,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the catalog table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
