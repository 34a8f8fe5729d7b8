package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"catalog-manager/core/campaign"
	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/feed"
	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"
	"catalog-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile catalog command
	applyCatalog      bool
	dryRunCatalog     bool
	yesConfirm        bool
	ignoreStockFlag   bool
	reportOutputPath  string
	sampleChangeCount int
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the catalog with the backend feed",
	Long: `Reconcile the stored catalog with the backend feed and the campaign code sheet.
A plan is always built and reported first; nothing is written unless --apply is given.`,
}

// catalogReconcileCmd plans and optionally applies a catalog reconciliation.
var catalogReconcileCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reconcile the catalog (report + optionally apply)",
	Long: `Reconcile the catalog against the backend feed.

Archives linked items missing from the feed, updates matched items, creates items
for new feed records and assigns campaign codes. Every change is reported before
anything is written.

Examples:
  # Report only
  reconcile catalog

  # Write the full plan to a file for review
  reconcile catalog --output plan.json

  # Apply (with interactive confirmation)
  reconcile catalog --apply

  # Apply without touching stock fields, auto-confirmed
  reconcile catalog --apply --ignore-stock --yes`,
	RunE: runCatalogReconcile,
}

func init() {
	reconcileCmd.AddCommand(catalogReconcileCmd)

	catalogReconcileCmd.Flags().BoolVar(&applyCatalog, "apply", false, "Write the merged catalog after confirmation")
	catalogReconcileCmd.Flags().BoolVar(&dryRunCatalog, "dry-run", false, "Force dry-run (no writes even with --apply --yes)")
	catalogReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm writes (non-interactive)")
	catalogReconcileCmd.Flags().BoolVar(&ignoreStockFlag, "ignore-stock", false, "Do not propagate quantity and availability (overrides RECONCILE_IGNORE_STOCK)")
	catalogReconcileCmd.Flags().StringVar(&reportOutputPath, "output", "", "Write the plan as JSON to this file")
	catalogReconcileCmd.Flags().IntVar(&sampleChangeCount, "sample", 5, "Number of changes to show in the report")

	RootCmd.AddCommand(reconcileCmd)
}

func runCatalogReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("ignore-stock") {
		cfg.Reconcile.IgnoreStock = ignoreStockFlag
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting catalog reconciliation",
		zap.Strings("categories", cfg.Feed.CategoryList()),
		zap.Bool("ignore_stock", cfg.Reconcile.IgnoreStock),
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	repo := catalog.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return err
	}
	sources := catalog.NewSources(feed.NewClient(cfg.Feed), campaign.NewSheet(client, cfg.Storage.Bucket, cfg.Campaign))
	svc := catalog.NewService(repo, sources, client, catalog.SettingsFromConfig(cfg), l)

	// Step 1: Plan (always runs)
	l.Info("Planning reconciliation...")
	plan, err := svc.Sync(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	// Step 2: Report
	printReconcileReport(l, plan, sampleChangeCount)
	if reportOutputPath != "" {
		if err := writePlanFile(reportOutputPath, plan); err != nil {
			return err
		}
		l.Info("Plan written", zap.String("path", reportOutputPath))
	}

	if !applyCatalog {
		l.Info("No actions requested. Use --apply to write the merged catalog.")
		return nil
	}

	if len(plan.Changes) == 0 {
		l.Info("Catalog is already up to date.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if dryRunCatalog {
		result, err := svc.Apply(ctx, plan.ID, true)
		if err != nil {
			return fmt.Errorf("failed to preview plan: %w", err)
		}
		l.Info("Dry-run mode: No changes were made.", zap.Int("would_write", result.Written))
		return nil
	}

	if !confirmWrite() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying plan...")
	result, err := svc.Apply(ctx, plan.ID, false)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Catalog written", zap.Int("items", result.Written))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.ReconcilePlan, sample int) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.String("plan_id", plan.ID),
		zap.Int("total_items", s.TotalItems),
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("archived", s.Archived),
		zap.Int("enriched", s.Enriched),
		zap.Int("warnings", s.Warnings),
	)

	for _, w := range plan.Warnings {
		l.Warn("Data anomaly",
			zap.String("kind", string(w.Kind)),
			zap.String("item_id", w.ItemID),
			zap.String("code", w.Code),
		)
	}

	maxShow := max(0, min(sample, len(plan.Changes)))
	for _, change := range plan.Changes[:maxShow] {
		fields := make([]string, 0, len(change.Diffs))
		for _, diff := range change.Diffs {
			fields = append(fields, diff.Field)
		}
		l.Info("Sample change",
			zap.String("type", string(change.Type)),
			zap.String("item_id", change.ItemID),
			zap.String("state", string(plan.States[change.ItemID])),
			zap.String("title", change.Item.Title),
			zap.Strings("fields", fields),
		)
	}
	if len(plan.Changes) > maxShow {
		l.Info("Additional changes not shown", zap.Int("count", len(plan.Changes)-maxShow))
	}
}

// writePlanFile stores the full plan as indented JSON.
func writePlanFile(path string, plan *reconcile.ReconcilePlan) error {
	body, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", path, err)
	}
	return nil
}

// confirmWrite prompts the user for confirmation or uses --yes flag.
func confirmWrite() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to write the merged catalog: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
