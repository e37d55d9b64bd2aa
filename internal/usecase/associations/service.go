// Package associations turns the raw upstream association result into the
// ranked view model the page renders.
package associations

import (
	"context"
	"fmt"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
)

// Overview is one complete page load: the disease plus its ranked rows.
type Overview struct {
	DiseaseID   string
	DiseaseName string
	Rows        []domain.ViewRow
}

// Service fetches and ranks disease-target associations.
type Service struct {
	fetcher Fetcher
	topN    int
}

// New creates an associations service keeping the top n rows per load.
func New(fetcher Fetcher, topN int) *Service {
	return &Service{fetcher: fetcher, topN: topN}
}

// Overview fetches the association result and ranks it. The result is
// recomputed on every call; nothing is cached between loads.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	result, err := s.fetcher.AssociatedTargets(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("fetch associated targets: %w", err)
	}

	return Overview{
		DiseaseID:   result.DiseaseID,
		DiseaseName: result.DiseaseName,
		Rows:        Rank(result, s.topN),
	}, nil
}

// Row returns the ranked row with the given target id from a fresh load.
func (s *Service) Row(ctx context.Context, targetID string) (domain.ViewRow, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return domain.ViewRow{}, err
	}
	for _, row := range ov.Rows {
		if row.ID == targetID {
			return row, nil
		}
	}
	return domain.ViewRow{}, fmt.Errorf("target %q: %w", targetID, domain.ErrTargetNotFound)
}
