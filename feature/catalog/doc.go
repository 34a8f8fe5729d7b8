// Package catalog exposes catalog reconciliation over HTTP.
//
// It stores the catalog snapshot in the database (Repository), fetches the backend
// feed and the campaign sheet (Sources), and drives the reconcile engine through a
// review-then-apply cycle (Service).
//
// # Endpoints
//
//   - GET  /catalog/items?status=    stored catalog in snapshot order
//   - GET  /catalog/stats            item counts per status
//   - POST /catalog/sync             plan a reconciliation, nothing is written
//   - GET  /catalog/sync/:id         fetch a stored plan
//   - POST /catalog/sync/:id/apply   persist a plan (dry_run=true to preview)
//
// Input fetch failures answer 502, unknown plans 404 and expired plans 410.
//
// # Plans
//
// Plans live in memory until applied or expired. Applying one invalidates the
// others, since they were built from the previous snapshot, and archives the
// applied plan as JSON in object storage.
package catalog
