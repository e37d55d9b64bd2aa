package associations

import (
	"context"
	"errors"
	"testing"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
)

// --- Mocks ---

type mockFetcher struct {
	result domain.AssociationResult
	err    error
	calls  int
}

func (m *mockFetcher) AssociatedTargets(_ context.Context) (domain.AssociationResult, error) {
	m.calls++
	return m.result, m.err
}

// --- Tests ---

func TestOverview_RanksAndTruncates(t *testing.T) {
	fetcher := &mockFetcher{result: domain.AssociationResult{
		DiseaseID:   "EFO_0001071",
		DiseaseName: "lung carcinoma",
		Entries: []domain.AssociationEntry{
			entry("ENSG1", "EGFR", "egfr", 0.9),
			entry("ENSG2", "KRAS", "kras", 0.95),
			entry("ENSG3", "TP53", "tp53", 0.8),
		},
	}}
	svc := New(fetcher, 2)

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ov.DiseaseName != "lung carcinoma" {
		t.Errorf("expected disease name to pass through, got %q", ov.DiseaseName)
	}
	if len(ov.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ov.Rows))
	}
	if ov.Rows[0].Symbol != "KRAS" || ov.Rows[1].Symbol != "EGFR" {
		t.Errorf("expected KRAS, EGFR order, got %s, %s", ov.Rows[0].Symbol, ov.Rows[1].Symbol)
	}
}

func TestOverview_FetchErrorPropagates(t *testing.T) {
	fetcher := &mockFetcher{err: domain.ErrUpstreamUnavailable}
	svc := New(fetcher, 10)

	_, err := svc.Overview(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestRow_FindsRankedTarget(t *testing.T) {
	fetcher := &mockFetcher{result: domain.AssociationResult{
		Entries: []domain.AssociationEntry{
			entry("ENSG1", "EGFR", "egfr", 0.9),
			entry("ENSG2", "KRAS", "kras", 0.95),
		},
	}}
	svc := New(fetcher, 10)

	row, err := svc.Row(context.Background(), "ENSG1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Symbol != "EGFR" {
		t.Errorf("expected EGFR, got %q", row.Symbol)
	}
}

func TestRow_UnknownTarget(t *testing.T) {
	fetcher := &mockFetcher{result: domain.AssociationResult{
		Entries: []domain.AssociationEntry{entry("ENSG1", "EGFR", "egfr", 0.9)},
	}}
	svc := New(fetcher, 10)

	_, err := svc.Row(context.Background(), "ENSG999")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("expected ErrTargetNotFound, got %v", err)
	}
}

func TestRow_OutsideTopNIsNotFound(t *testing.T) {
	fetcher := &mockFetcher{result: domain.AssociationResult{
		Entries: []domain.AssociationEntry{
			entry("ENSG1", "EGFR", "egfr", 0.9),
			entry("ENSG2", "KRAS", "kras", 0.95),
		},
	}}
	svc := New(fetcher, 1)

	if _, err := svc.Row(context.Background(), "ENSG1"); !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("expected truncated row to be not found, got %v", err)
	}
}

func TestOverview_NoCachingBetweenLoads(t *testing.T) {
	fetcher := &mockFetcher{}
	svc := New(fetcher, 10)

	_, _ = svc.Overview(context.Background())
	_, _ = svc.Overview(context.Background())

	if fetcher.calls != 2 {
		t.Errorf("expected one fetch per load, got %d calls", fetcher.calls)
	}
}
