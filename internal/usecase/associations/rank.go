package associations

import (
	"sort"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/domain"
)

// Rank flattens the raw association result into display-ready view rows,
// sorted by overall score descending and truncated to the top n.
//
// Missing fields never fail: an absent target yields empty id/symbol, an
// absent score counts as 0, an absent category list yields an empty list.
// A missing approved name falls back to the target id. The sort is stable,
// so entries with equal scores keep their source order.
func Rank(result domain.AssociationResult, n int) []domain.ViewRow {
	rows := make([]domain.ViewRow, 0, len(result.Entries))
	for _, e := range result.Entries {
		row := domain.ViewRow{OverallScore: e.Score}
		if e.Target != nil {
			row.ID = e.Target.ID
			row.Symbol = e.Target.ApprovedSymbol
			row.Name = e.Target.ApprovedName
		}
		if row.Name == "" {
			row.Name = row.ID
		}
		row.Categories = make([]domain.ScoredCategory, 0, len(e.DatatypeScores))
		for _, ds := range e.DatatypeScores {
			row.Categories = append(row.Categories, domain.ScoredCategory{ID: ds.ID, Score: ds.Score})
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OverallScore > rows[j].OverallScore
	})

	if n < 0 {
		n = 0
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
