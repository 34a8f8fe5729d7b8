package reconcile

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedPlan is a plan held for review until it is applied or expires.
type cachedPlan struct {
	plan  *ReconcilePlan
	built time.Time
}

// PlanStore holds reviewable plans keyed by plan ID.
type PlanStore struct {
	mu    sync.RWMutex
	plans map[string]cachedPlan
	ttl   time.Duration
	now   func() time.Time
}

// NewPlanStore creates a plan store. A zero TTL keeps plans until deleted.
func NewPlanStore(ttl time.Duration) *PlanStore {
	return &PlanStore{
		plans: make(map[string]cachedPlan),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores a plan under its ID.
func (s *PlanStore) Put(plan *ReconcilePlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.ID] = cachedPlan{plan: plan, built: s.now()}
}

// Get returns the plan stored under id.
// Expired plans are evicted and reported as ErrPlanExpired.
func (s *PlanStore) Get(id string) (*ReconcilePlan, error) {
	s.mu.RLock()
	cached, exists := s.plans[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrPlanNotFound
	}
	if s.ttl > 0 && s.now().Sub(cached.built) > s.ttl {
		s.Delete(id)
		return nil, ErrPlanExpired
	}
	return cached.plan, nil
}

// Delete removes the plan stored under id.
func (s *PlanStore) Delete(id string) {
	s.mu.Lock()
	delete(s.plans, id)
	s.mu.Unlock()
}

// Clear removes every stored plan.
// Applying a plan changes the snapshot the remaining plans were built from.
func (s *PlanStore) Clear() {
	s.mu.Lock()
	clear(s.plans)
	s.mu.Unlock()
}

// Len returns the number of stored plans, expired ones included.
func (s *PlanStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}

// Runner serializes reconciliation runs per catalog key.
// Callers arriving while a run is in flight share its result instead of
// starting a second run against the same snapshot.
type Runner struct {
	sf singleflight.Group
}

// Run executes fn unless a run for key is already in flight.
// shared reports whether the result came from another caller's run.
func (r *Runner) Run(key string, fn func() (*ReconcilePlan, error)) (plan *ReconcilePlan, shared bool, err error) {
	result, err, shared := r.sf.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, shared, err
	}
	return result.(*ReconcilePlan), shared, nil
}
