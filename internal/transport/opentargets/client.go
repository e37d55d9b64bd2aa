// Package opentargets is the client for the Open Targets Platform GraphQL
// API. It issues the one fixed associated-targets query this service needs
// and maps failures onto domain sentinels.
package opentargets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
	"github.com/daviddamilola/LungCarcinoma-Insights/internal/metrics"
)

// associatedTargetsQuery requests the top associated targets for one
// disease with their overall and per-datatype scores.
const associatedTargetsQuery = `
query associatedTargets($efoId: String!, $size: Int!) {
  disease(efoId: $efoId) {
    id
    name
    associatedTargets(page: { index: 0, size: $size }) {
      rows {
        target {
          id
          approvedSymbol
          approvedName
        }
        score
        datatypeScores {
          id
          score
        }
      }
    }
  }
}`

// metaQuery is the cheapest round trip the API offers, used for health checks.
const metaQuery = `
query {
  meta {
    name
  }
}`

// Client queries the knowledge graph for one configured disease.
type Client struct {
	gql       *graphql.Client
	diseaseID string
	pageSize  int
	logger    *zap.Logger
}

// Config holds the upstream client settings.
type Config struct {
	Endpoint  string
	DiseaseID string
	PageSize  int
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewClient creates an Open Targets GraphQL client.
func NewClient(cfg *Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gql := graphql.NewClient(cfg.Endpoint,
		graphql.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	gql.Log = func(msg string) { logger.Debug("graphql client", zap.String("msg", msg)) }

	return &Client{
		gql:       gql,
		diseaseID: cfg.DiseaseID,
		pageSize:  cfg.PageSize,
		logger:    logger,
	}
}

type associatedTargetsResponse struct {
	Disease *struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		AssociatedTargets struct {
			Rows []domain.AssociationEntry `json:"rows"`
		} `json:"associatedTargets"`
	} `json:"disease"`
}

// AssociatedTargets implements associations.Fetcher. Every failure class
// (network, HTTP, GraphQL errors) is wrapped with ErrUpstreamUnavailable;
// missing fields inside a successful response are left to the ranking
// defaults downstream.
func (c *Client) AssociatedTargets(ctx context.Context) (domain.AssociationResult, error) {
	req := graphql.NewRequest(associatedTargetsQuery)
	req.Var("efoId", c.diseaseID)
	req.Var("size", c.pageSize)

	var resp associatedTargetsResponse

	start := time.Now()
	err := c.gql.Run(ctx, req, &resp)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("associated_targets", "error").Inc()
		return domain.AssociationResult{}, fmt.Errorf(
			"associated targets query: %s: %w", err, domain.ErrUpstreamUnavailable)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("associated_targets", "success").Inc()
	metrics.UpstreamRequestDuration.WithLabelValues("associated_targets").Observe(duration.Seconds())

	if resp.Disease == nil {
		return domain.AssociationResult{}, fmt.Errorf("disease %q: %w", c.diseaseID, domain.ErrDiseaseNotFound)
	}

	c.logger.Debug("associated targets fetched",
		zap.String("disease", resp.Disease.ID),
		zap.Int("rows", len(resp.Disease.AssociatedTargets.Rows)),
		zap.Duration("latency", duration),
	)

	return domain.AssociationResult{
		DiseaseID:   resp.Disease.ID,
		DiseaseName: resp.Disease.Name,
		Entries:     resp.Disease.AssociatedTargets.Rows,
	}, nil
}

// HealthCheck verifies API availability via the meta query.
func (c *Client) HealthCheck(ctx context.Context) error {
	req := graphql.NewRequest(metaQuery)
	var resp struct {
		Meta struct {
			Name string `json:"name"`
		} `json:"meta"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return fmt.Errorf("meta query: %w", err)
	}
	return nil
}
