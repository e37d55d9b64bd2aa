// Package domain holds the core types shared across the service: the raw
// upstream association shape and the flattened view model the page renders.
package domain

// Target is the gene entity as returned by the knowledge graph.
type Target struct {
	ID             string `json:"id"`
	ApprovedSymbol string `json:"approvedSymbol"`
	ApprovedName   string `json:"approvedName"`
}

// DatatypeScore is one per-category component of an association score,
// keyed by a short datatype identifier (e.g. "known_drug").
type DatatypeScore struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// AssociationEntry is one raw target/score row from the upstream query.
// Any field may be absent in the response; absent fields decode to zero
// values and are resolved by the ranking defaults, never by an error.
type AssociationEntry struct {
	Target         *Target         `json:"target"`
	Score          float64         `json:"score"`
	DatatypeScores []DatatypeScore `json:"datatypeScores"`
}

// AssociationResult is the full upstream result for one disease.
type AssociationResult struct {
	DiseaseID   string
	DiseaseName string
	Entries     []AssociationEntry
}

// ScoredCategory is one category/score pair owned by a ViewRow.
// Insertion order follows the source order and is not sorted.
type ScoredCategory struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// ViewRow is the flattened, defaulted, display-ready representation of one
// ranked target. Created once per load and never mutated afterwards.
type ViewRow struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	OverallScore float64          `json:"overallScore"`
	Categories   []ScoredCategory `json:"categories"`
}
