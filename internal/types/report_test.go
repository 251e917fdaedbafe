package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_IsZero(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsZero())
	assert.False(t, FilterCriteria{Companies: []string{"Acme"}}.IsZero())
	assert.False(t, FilterCriteria{Categories: []string{"Sectoral"}}.IsZero())
	assert.False(t, FilterCriteria{Sources: []string{"BrokerOne"}}.IsZero())
	assert.False(t, FilterCriteria{DateFrom: "2024-01-01"}.IsZero())
	assert.False(t, FilterCriteria{DateTo: "2024-12-31"}.IsZero())
}

func TestReportDocument_DisplayFileName(t *testing.T) {
	doc := ReportDocument{FileName: "top.pdf", Metadata: ReportMetadata{FileName: "meta.pdf"}}
	assert.Equal(t, "top.pdf", doc.DisplayFileName())

	doc = ReportDocument{Metadata: ReportMetadata{FileName: "meta.pdf"}}
	assert.Equal(t, "meta.pdf", doc.DisplayFileName())

	doc = ReportDocument{}
	assert.Empty(t, doc.DisplayFileName())
}

func TestReportDocument_JoinedCompanyNames(t *testing.T) {
	doc := ReportDocument{CompanyNames: []string{"Acme Corp", "Beta Ltd"}}
	assert.Equal(t, "Acme Corp, Beta Ltd", doc.JoinedCompanyNames())

	doc = ReportDocument{}
	assert.Empty(t, doc.JoinedCompanyNames())
}
