package engine

import "time"

// TimeProvider is the loop's only clock; queried once per frame
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
