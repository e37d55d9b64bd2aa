package domain

import "errors"

var (
	// ErrUpstreamUnavailable signals a failed knowledge-graph query
	// (network, HTTP, or GraphQL-level failure).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrDiseaseNotFound signals that the upstream returned no disease
	// for the configured identifier.
	ErrDiseaseNotFound = errors.New("disease not found")
	// ErrTargetNotFound signals a missing target in the current result set.
	ErrTargetNotFound = errors.New("target not found")
	// ErrUnknownChartKind signals an unsupported chart variant.
	ErrUnknownChartKind = errors.New("unknown chart kind")
)
