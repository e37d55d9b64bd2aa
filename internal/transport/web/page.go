package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"

	"github.com/daviddamilola/LungCarcinoma-Insights/internal/chart"
	associationsuc "github.com/daviddamilola/LungCarcinoma-Insights/internal/usecase/associations"
)

//go:embed page.gohtml
var pageTemplateText string

var pageTmpl = template.Must(template.New("page").Parse(pageTemplateText))

// geneCardsBase is the external entity-detail page rows link out to.
const geneCardsBase = "https://www.genecards.org/cgi-bin/carddisp.pl?gene="

type pageData struct {
	DiseaseID   string
	DiseaseName string
	Rows        []pageRow
}

type pageRow struct {
	Rank     int
	ID       string
	Symbol   string
	Name     string
	Score    string
	Link     string
	BarSVG   template.HTML
	RadarSVG template.HTML
}

// buildPageData renders both chart variants for every row up front, so the
// tab toggle on the page is pure visibility state with no further requests.
func buildPageData(ov associationsuc.Overview) pageData {
	data := pageData{
		DiseaseID:   ov.DiseaseID,
		DiseaseName: ov.DiseaseName,
		Rows:        make([]pageRow, 0, len(ov.Rows)),
	}

	for i, row := range ov.Rows {
		items := chartData(row)
		title := chartTitle(row)

		var barBuf, radarBuf bytes.Buffer
		chart.NewBarLayout(items, title).Render(&barBuf)
		chart.NewRadarLayout(items, title).Render(&radarBuf)

		data.Rows = append(data.Rows, pageRow{
			Rank:   i + 1,
			ID:     row.ID,
			Symbol: row.Symbol,
			Name:   row.Name,
			Score:  formatScore(row.OverallScore),
			Link:   geneCardsBase + url.QueryEscape(row.Name),
			// Server-built SVG markup, safe by construction.
			BarSVG:   template.HTML(barBuf.String()),   //nolint:gosec
			RadarSVG: template.HTML(radarBuf.String()), //nolint:gosec
		})
	}
	return data
}
