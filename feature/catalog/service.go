package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// runKey identifies the single catalog snapshot served by this service.
const runKey = "catalog"

// Settings controls how the service reconciles and archives plans.
type Settings struct {
	// Categories are fetched from the feed on every sync.
	Categories []string
	// Options are passed to the engine.
	Options reconcile.Options
	// PlanTTL is how long a plan stays available for apply. Zero keeps plans until applied.
	PlanTTL time.Duration
	// Bucket receives archived plan reports.
	Bucket string
	// ReportPrefix is prepended to archived report names. Empty disables archiving.
	ReportPrefix string
}

// ApplyResult describes the outcome of applying a plan.
type ApplyResult struct {
	PlanID  string                `json:"plan_id"`
	DryRun  bool                  `json:"dry_run"`
	Written int                   `json:"written"`
	Summary reconcile.PlanSummary `json:"summary"`
}

// Service runs catalog reconciliations and applies reviewed plans.
type Service struct {
	repo     *Repository
	sources  reconcile.Sources
	client   storage.Client
	settings Settings
	logger   *zap.Logger

	plans  *reconcile.PlanStore
	runner reconcile.Runner

	// snapshotMu is held shared while a plan is built and exclusively while one is
	// applied, so no plan built from a replaced snapshot outlives the apply.
	snapshotMu sync.RWMutex
}

// NewService creates a new catalog service.
func NewService(repo *Repository, sources reconcile.Sources, client storage.Client, settings Settings, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		sources:  sources,
		client:   client,
		settings: settings,
		logger:   logger,
		plans:    reconcile.NewPlanStore(settings.PlanTTL),
	}
}

// Sync reconciles the stored catalog against the feed and the campaign sheet and
// stores the resulting plan for review. Concurrent calls share one run, which is
// detached from the caller's cancellation so one caller leaving does not fail the others.
func (s *Service) Sync(ctx context.Context) (*reconcile.ReconcilePlan, error) {
	runCtx := context.WithoutCancel(ctx)
	plan, shared, err := s.runner.Run(runKey, func() (*reconcile.ReconcilePlan, error) {
		return s.buildPlan(runCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined in-flight reconciliation", zap.String("plan_id", plan.ID))
	}
	return plan, nil
}

func (s *Service) buildPlan(ctx context.Context) (*reconcile.ReconcilePlan, error) {
	s.snapshotMu.RLock()
	defer s.snapshotMu.RUnlock()

	start := time.Now()

	local, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := reconcile.LoadInputs(ctx, s.sources, s.settings.Categories)
	if err != nil {
		return nil, err
	}

	result := reconcile.Reconcile(local, inputs.Records, inputs.CampaignCodes, s.settings.Options)
	plan := reconcile.BuildPlan(result)
	s.plans.Put(plan)

	l := logger.WithPlan(s.logger, plan.ID)
	for _, w := range plan.Warnings {
		l.Warn("Catalog data anomaly",
			zap.String("kind", string(w.Kind)),
			zap.String("item_id", w.ItemID),
			zap.String("code", w.Code),
		)
	}
	l.Info("Reconciliation planned",
		zap.Int("local_items", len(local)),
		zap.Int("source_records", len(inputs.Records)),
		zap.Int("created", plan.Summary.Created),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("archived", plan.Summary.Archived),
		zap.Int("enriched", plan.Summary.Enriched),
		zap.Duration("duration", time.Since(start)),
	)

	return plan, nil
}

// GetPlan returns a stored plan.
func (s *Service) GetPlan(id string) (*reconcile.ReconcilePlan, error) {
	return s.plans.Get(id)
}

// Apply persists a stored plan. A dry run reports what would be written and keeps
// the plan. A successful apply invalidates every pending plan and archives the
// applied one as a JSON report.
func (s *Service) Apply(ctx context.Context, id string, dryRun bool) (*ApplyResult, error) {
	s.snapshotMu.Lock()
	defer s.snapshotMu.Unlock()

	plan, err := s.plans.Get(id)
	if err != nil {
		return nil, err
	}

	result := &ApplyResult{PlanID: plan.ID, DryRun: dryRun, Summary: plan.Summary}
	if dryRun {
		result.Written = len(plan.Catalog)
		return result, nil
	}

	written, err := reconcile.ApplyPlan(ctx, s.repo, plan, reconcile.ApplyOptions{Confirmed: true})
	if err != nil {
		return nil, err
	}
	result.Written = written

	s.plans.Clear()
	logger.WithPlan(s.logger, plan.ID).Info("Plan applied", zap.Int("written", written))

	if err := s.archiveReport(ctx, plan); err != nil {
		logger.WithPlan(s.logger, plan.ID).Warn("Failed to archive plan report", zap.Error(err))
	}
	return result, nil
}

// archiveReport uploads the applied plan to object storage.
func (s *Service) archiveReport(ctx context.Context, plan *reconcile.ReconcilePlan) error {
	if s.client == nil || s.settings.ReportPrefix == "" {
		return nil
	}

	body, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	name := s.settings.ReportPrefix + plan.ID + ".json"
	_, err = s.client.PutObject(ctx, s.settings.Bucket, name, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// ListItems returns the stored catalog, optionally filtered by status.
func (s *Service) ListItems(ctx context.Context, status string) ([]reconcile.CatalogItem, error) {
	items, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return items, nil
	}

	filtered := make([]reconcile.CatalogItem, 0, len(items))
	for _, item := range items {
		if string(item.Status) == status {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Stats returns the number of stored items per status.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountByStatus(ctx)
}
