package core

import (
	"context"
	"time"
)

// Duration is the domain's time span, kept separate from time.Duration so the
// use cases depend only on this package
type Duration time.Duration

// Duration units used by the ingestion deadline
const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the service clock. Server-assigned timestamps come from Now;
// client timestamps never do.
type TimeProvider interface {
	Now() time.Time
	// WithTimeout derives a context bounded by timeout. A non-positive
	// timeout only adds cancellation.
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
