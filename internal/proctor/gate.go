// Package proctor contains the client-side proctoring session: the cooldown
// gate, the in-memory violation aggregate and the inference tick loop.
package proctor

import (
	"time"

	"github.com/ashureev/examwatch/internal/domain"
	"github.com/benbjohnson/clock"
)

// DefaultCooldown is the minimum time between two accepted events of the
// same category.
const DefaultCooldown = 3 * time.Second

// Gate debounces per-frame violation signals into discrete events. Each
// category has an independent cooldown clock: accepting a CellPhone event
// does not delay the next NoFace event.
//
// Gate is not safe for concurrent use; the session tick loop is the sole
// caller.
type Gate struct {
	cooldown time.Duration
	clock    clock.Clock
	lastAt   map[domain.Category]time.Time
}

// NewGate creates a gate with the given cooldown window. A non-positive
// cooldown falls back to DefaultCooldown. clk may be nil, in which case the
// wall clock is used.
func NewGate(cooldown time.Duration, clk clock.Clock) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Gate{
		cooldown: cooldown,
		clock:    clk,
		lastAt:   make(map[domain.Category]time.Time),
	}
}

// Accept reports whether an event for cat should be recorded now. It
// returns true, and records the acceptance time, iff no event for cat was
// accepted yet or at least the cooldown has elapsed since the last one.
// A rejection leaves the gate's state untouched.
func (g *Gate) Accept(cat domain.Category) bool {
	now := g.clock.Now()
	last, seen := g.lastAt[cat]
	if seen && now.Sub(last) < g.cooldown {
		return false
	}
	g.lastAt[cat] = now
	return true
}

// Reset clears all cooldown state. Called when a new session starts.
func (g *Gate) Reset() {
	g.lastAt = make(map[domain.Category]time.Time)
}
