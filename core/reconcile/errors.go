package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrPlanNotFound indicates that no plan is stored under the given ID.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanExpired indicates that the plan outlived the store TTL.
	ErrPlanExpired = errors.New("plan expired")
)

// FetchError reports a failed input fetch. Any fetch failure aborts the whole run.
type FetchError struct {
	// Source names the failed input, e.g. "records:shoes" or "campaign_codes".
	Source string
	Err    error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}
