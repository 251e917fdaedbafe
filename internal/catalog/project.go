// Package catalog builds and filters the in-memory catalog of visible reports.
package catalog

import (
	"github.com/jonathan/report-explorer/internal/types"
)

// Project flattens analysed report documents into catalog rows, one per
// document, preserving input order. It performs no filtering or
// deduplication; company names are joined into a single display string
// and nested metadata fields are lifted to the top level.
func Project(docs []types.ReportDocument) []types.CatalogRow {
	rows := make([]types.CatalogRow, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		rows = append(rows, types.CatalogRow{
			ID:            doc.ID,
			Title:         doc.Title,
			CompanyNames:  doc.JoinedCompanyNames(),
			Category:      doc.Category,
			AutoCategory:  doc.AutoCategory,
			PublishedDate: doc.PublishedDate,
			Source:        doc.Metadata.Source,
			Preview:       doc.Metadata.TextPreview,
			FileName:      doc.DisplayFileName(),
		})
	}
	return rows
}
