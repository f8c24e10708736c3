package core

import (
	"time"
)

// Timestamp represents a point in time, always stored in UTC
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC())
}

// Now returns the current timestamp
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Since returns the time elapsed since t
func (t Timestamp) Since() time.Duration {
	return time.Since(t.Time())
}

func (t Timestamp) String() string { return t.Time().Format(time.RFC3339) }
