package connection

import (
	"math/rand"
	"sync"
	"time"
)

// BackoffConfig configures the attempt interval policy.
type BackoffConfig struct {
	// First is the wait before the very first attempt.
	First time.Duration

	// Interval is the wait between later attempts.
	Interval time.Duration

	// Max caps the interval when Multiplier > 1.
	Max time.Duration

	// Multiplier grows the interval after each attempt.
	Multiplier float64

	// Jitter is the maximum extra delay as a fraction of the interval.
	Jitter float64
}

// Backoff decides how long to wait before the next connection attempt.
type Backoff struct {
	mu sync.Mutex

	// Current interval (before jitter)
	current time.Duration

	// Delay returned until the next Advance
	delay time.Duration

	// Configuration
	first      time.Duration
	interval   time.Duration
	max        time.Duration
	multiplier float64
	jitter     float64

	// Attempt counter
	attempts int

	// Random source for jitter
	rng *rand.Rand
}

// NewBackoff creates an interval policy from cfg.
func NewBackoff(cfg BackoffConfig) *Backoff {
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	if cfg.Max < cfg.Interval {
		cfg.Max = cfg.Interval
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}

	return &Backoff{
		current:    cfg.Interval,
		delay:      cfg.First,
		first:      cfg.First,
		interval:   cfg.Interval,
		max:        cfg.Max,
		multiplier: cfg.Multiplier,
		jitter:     cfg.Jitter,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Delay returns the wait before the next attempt.
// Before the first attempt this is the first-attempt delay.
func (b *Backoff) Delay() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.delay
}

// Advance records that an attempt was issued and fixes the delay before the
// following one.
func (b *Backoff) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attempts++
	b.delay = b.addJitter(b.current)

	next := time.Duration(float64(b.current) * b.multiplier)
	if next > b.max {
		next = b.max
	}
	b.current = next
}

// Settle drops any interval growth after a successful connection.
// The next attempt waits the base interval.
func (b *Backoff) Settle() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = b.interval
	if b.attempts > 0 {
		b.delay = b.addJitter(b.interval)
	}
}

// Reset returns the policy to its initial state, so the next attempt is
// treated as the first.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = b.interval
	b.delay = b.first
	b.attempts = 0
}

// Attempts returns the number of attempts since the last reset.
func (b *Backoff) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}

// Current returns the current base interval (without jitter).
func (b *Backoff) Current() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// addJitter adds random jitter to a delay.
func (b *Backoff) addJitter(d time.Duration) time.Duration {
	if b.jitter <= 0 {
		return d
	}
	jitterAmount := time.Duration(float64(d) * b.jitter * b.rng.Float64())
	return d + jitterAmount
}
