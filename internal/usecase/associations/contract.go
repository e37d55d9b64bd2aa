package associations

import (
	"context"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
)

// Fetcher retrieves the associated-targets result for the configured disease.
type Fetcher interface {
	AssociatedTargets(ctx context.Context) (domain.AssociationResult, error)
}
