package generator

import (
	"math/rand"
	"sync"
	"time"
)

// Rand yields bounded random floats. Injectable so tests can pin ratings
// and jitter to exact values.
type Rand interface {
	// Float64InRange returns a uniform value in the half-open interval
	// [min, max). max itself is never drawn; callers treating the bounds
	// as inclusive lose at most one float64 step of range.
	Float64InRange(min, max float64) float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a goroutine-safe Rand seeded from seed.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// DefaultRand returns a time-seeded Rand for production use.
func DefaultRand() Rand {
	return NewRand(time.Now().UnixNano())
}

func (l *lockedRand) Float64InRange(min, max float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return min + l.r.Float64()*(max-min)
}
