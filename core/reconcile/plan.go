package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BuildPlan wraps a reconciliation result into a reviewable plan with a summary.
func BuildPlan(result *Result) *ReconcilePlan {
	plan := &ReconcilePlan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Catalog:   result.Catalog,
		Changes:   result.Changes,
		Warnings:  result.Warnings,
		States:    ItemStates(result.Changes),
	}
	plan.Summary = summarize(result)
	return plan
}

// ApplyPlan persists the merged catalog of a plan.
// Requires opts.Confirmed=true and opts.DryRun=false to actually write;
// returns the number of items written.
func ApplyPlan(ctx context.Context, persister Persister, plan *ReconcilePlan, opts ApplyOptions) (int, error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if plan == nil {
		return 0, ErrPlanNotFound
	}

	if err := persister.SaveCatalog(ctx, plan.Catalog); err != nil {
		return 0, fmt.Errorf("failed to save catalog for plan %s: %w", plan.ID, err)
	}

	return len(plan.Catalog), nil
}

// summarize computes aggregate counts of a result.
func summarize(result *Result) PlanSummary {
	summary := PlanSummary{
		TotalItems: len(result.Catalog),
		Warnings:   len(result.Warnings),
	}

	for _, record := range result.Changes {
		switch record.Type {
		case ChangeNew:
			summary.Created++
		case ChangeUpdate:
			summary.Updated++
		}

		for _, diff := range record.Diffs {
			switch {
			case diff.Field == "status" && diff.NewValue == string(StatusArchived):
				summary.Archived++
			case diff.Field == "commercial_code":
				summary.Enriched++
			}
		}
	}

	return summary
}
