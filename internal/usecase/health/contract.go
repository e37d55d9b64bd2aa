package health

import "context"

// UpstreamChecker checks knowledge-graph API availability.
type UpstreamChecker interface {
	HealthCheck(ctx context.Context) error
}
