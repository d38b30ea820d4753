package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

// RealTimeProvider is the wall-clock TimeProvider. It stamps Event.CreatedAt
// and user creation times; it never decides event ordering.
type RealTimeProvider struct {
	loc *time.Location
}

// NewRealTimeProvider creates a provider that reports UTC times
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{loc: time.UTC}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// WithTimeout bounds a unit of work by the configured request timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}
