// Package types provides type definitions for structured data used throughout the report explorer.
package types

import "strings"

// ReportMetadata holds the nested metadata block attached to a report
// document by the ingestion pipeline.
type ReportMetadata struct {
	Source      string `bson:"source,omitempty" json:"source,omitempty"`
	TextPreview string `bson:"text_preview,omitempty" json:"text_preview,omitempty"`
	FileName    string `bson:"file_name,omitempty" json:"file_name,omitempty"`
}

// ReportDocument represents one analyzed research report as stored in the
// reports collection. Documents are created by an external ingestion
// pipeline; this system only reads them.
type ReportDocument struct {
	ID            string         `bson:"_id" json:"id"`
	Status        string         `bson:"status" json:"status"`
	Title         string         `bson:"title,omitempty" json:"title"`
	CompanyNames  []string       `bson:"company_names,omitempty" json:"company_names,omitempty"`
	Category      string         `bson:"category,omitempty" json:"category,omitempty"`
	AutoCategory  string         `bson:"auto_category,omitempty" json:"auto_category,omitempty"`
	PublishedDate string         `bson:"published_date,omitempty" json:"published_date,omitempty"`
	FileName      string         `bson:"file_name,omitempty" json:"file_name,omitempty"`
	Metadata      ReportMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`

	// Report holds the structured report content: a mapping from field
	// name to scalar, list, or nested mapping values.
	Report map[string]any `bson:"report,omitempty" json:"report,omitempty"`
}

// CatalogRow is a flattened projection of a ReportDocument used for
// filtering and tabular display. Rows carry no identity beyond the
// source document's ID and are regenerated on every catalog load.
type CatalogRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CompanyNames  string `json:"company_names"`
	Category      string `json:"category"`
	AutoCategory  string `json:"auto_category"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
	Preview       string `json:"preview"`
	FileName      string `json:"file_name"`
}

// FilterCriteria holds the user-selected catalog filters. An empty slice
// or empty string means "no constraint" for that dimension.
type FilterCriteria struct {
	Companies  []string `json:"companies,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	DateFrom   string   `json:"date_from,omitempty"`
	DateTo     string   `json:"date_to,omitempty"`
}

// IsZero reports whether no filter dimension is constrained.
func (c FilterCriteria) IsZero() bool {
	return len(c.Companies) == 0 && len(c.Categories) == 0 && len(c.Sources) == 0 &&
		c.DateFrom == "" && c.DateTo == ""
}

// DisplayFileName returns the report's file name, falling back to the
// nested metadata value when the top-level field is absent.
func (d *ReportDocument) DisplayFileName() string {
	if d.FileName != "" {
		return d.FileName
	}
	return d.Metadata.FileName
}

// JoinedCompanyNames returns the document's company names joined into a
// single display string.
func (d *ReportDocument) JoinedCompanyNames() string {
	return strings.Join(d.CompanyNames, ", ")
}
