package proctor

import (
	"sync"

	"github.com/ashureev/examwatch/internal/domain"
)

// Aggregate accumulates gate-accepted violation events for one exam session.
// Counts only ever increase; there is no reset short of starting a new
// session with a new Aggregate.
//
// Record is only called from the session tick loop, but Snapshot may be
// called concurrently by the reporting path, so the counters are guarded.
type Aggregate struct {
	mu     sync.Mutex
	examID string
	user   string
	email  string
	counts map[domain.Category]int
}

// NewAggregate creates an empty aggregate bound to the session identity.
// Identity is immutable after creation.
func NewAggregate(examID, username, email string) *Aggregate {
	return &Aggregate{
		examID: examID,
		user:   username,
		email:  email,
		counts: make(map[domain.Category]int),
	}
}

// Record increments the count for cat by exactly one.
func (a *Aggregate) Record(cat domain.Category) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts[cat]++
}

// Count returns the current count for cat.
func (a *Aggregate) Count(cat domain.Category) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[cat]
}

// Snapshot returns a detached copy of the aggregate as a CheatingLog, safe
// to serialize and submit while ticks continue to mutate the live counters.
func (a *Aggregate) Snapshot() domain.CheatingLog {
	a.mu.Lock()
	defer a.mu.Unlock()

	log := domain.CheatingLog{
		ExamID:   a.examID,
		Username: a.user,
		Email:    a.email,
	}
	for cat, n := range a.counts {
		log.SetCount(cat, n)
	}
	return log
}
