// Package reconcile merges an authoritative product feed into a locally held catalog.
//
// A run takes three already-materialized inputs: the local catalog snapshot, the backend
// source records and the campaign code map. It produces the fully merged catalog and an
// ordered, field-level audit trail of every change, meant for human review before
// anything is persisted.
//
// # Matching
//
// Items and backend records are matched on their normalized business code
// (see Normalize). Leading zeros and the zero padding between an alphabetic prefix and a
// numeric suffix are ignored, so "YA000898" and "YA898" match. Duplicate codes are
// resolved first-wins on both sides and surfaced as warnings, never as errors.
//
// # Phases
//
// Reconcile runs four phases in fixed order:
//
// 1. Archive: linked items whose code is missing from the feed become archived.
//
// 2. Update: matched items receive the backend values, one FieldDiff per changed field.
//
// 3. Create: unmatched records become new items with sanitized defaults.
//
// 4. Enrich: every item receives its campaign code. Changes to items of the original
//    snapshot are merged into their existing UPDATE record when there is one.
//
// Running twice with the first run's catalog as the second run's input yields no changes.
//
// # Inputs and persistence
//
// LoadInputs fetches the backend categories and the campaign code map concurrently and
// fails as a whole if any fetch fails. BuildPlan and ApplyPlan wrap a result for review
// and persist it through a Persister once confirmed. PlanStore keeps plans between review
// and apply; Runner keeps concurrent runs against one catalog from overlapping.
//
// # Usage Example
//
//	inputs, err := reconcile.LoadInputs(ctx, sources, []string{"shoes", "bags"})
//	if err != nil {
//	    return err
//	}
//	result := reconcile.Reconcile(local, inputs.Records, inputs.CampaignCodes, reconcile.Options{IgnoreStock: true})
//	plan := reconcile.BuildPlan(result)
//	written, err := reconcile.ApplyPlan(ctx, repo, plan, reconcile.ApplyOptions{Confirmed: true})
package reconcile
