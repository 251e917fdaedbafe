// Package render converts structured report content into self-contained HTML documents.
package render

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldOrder is the fixed display order for sectoral report fields.
// Fields not in this list are ignored by the renderer.
var FieldOrder = []string{
	"sector", "period_covered", "analysts", "executive_summary",
	"overall_sentiment", "overall_sentiment_triggers", "sector_highlights",
	"industry_metrics_tables", "charts_and_figures", "macro_trends",
	"headwinds_tailwinds", "key_statistics", "top_companies", "weak_companies",
	"company_wise_detail", "conclusion", "data_sources", "sector_specific",
}

// FieldKind identifies how a field value is rendered.
type FieldKind int

// Supported field kinds, each carrying its own typed payload.
const (
	KindTableList FieldKind = iota
	KindChartList
	KindCompanyList
	KindCompanyDetail
	KindStringList
	KindMapping
	KindScalar
)

// TableEntry is one entry of industry_metrics_tables. TableData is a
// table encoded as comma-separated text with a header row.
type TableEntry struct {
	Title       string
	TableData   string
	Description string
}

// ChartEntry is one entry of charts_and_figures.
type ChartEntry struct {
	Title       string
	Description string
}

// CompanyEntry is one entry of top_companies or weak_companies.
type CompanyEntry struct {
	Name               string
	PerformanceSummary string
	Rationale          string
	HasRationale       bool
}

// CompanyDetail is one entry of company_wise_detail. Optional blocks are
// omitted from the rendered output when empty.
type CompanyDetail struct {
	Name              string
	Sentiment         string
	BriefSummary      string
	SentimentTriggers []string
	Metrics           string
	OutlookGuidance   string
}

// fieldValue is the tagged variant produced by classifying a raw field
// value. Exactly one payload is populated, selected by kind.
type fieldValue struct {
	kind      FieldKind
	tables    []TableEntry
	charts    []ChartEntry
	companies []CompanyEntry
	details   []CompanyDetail
	items     []any
	mapping   map[string]any
	scalar    any
}

// classify decodes a raw field value into its typed variant. It returns
// ok=false for absent or empty/falsy values, which are skipped entirely.
func classify(field string, value any) (fieldValue, bool) {
	if isEmpty(value) {
		return fieldValue{}, false
	}

	if list, ok := asList(value); ok {
		switch field {
		case "industry_metrics_tables":
			return fieldValue{kind: KindTableList, tables: decodeTableEntries(list)}, true
		case "charts_and_figures":
			return fieldValue{kind: KindChartList, charts: decodeChartEntries(list)}, true
		case "top_companies", "weak_companies":
			return fieldValue{kind: KindCompanyList, companies: decodeCompanyEntries(list)}, true
		case "company_wise_detail":
			return fieldValue{kind: KindCompanyDetail, details: decodeCompanyDetails(list)}, true
		default:
			// analysts and any other list-valued field
			return fieldValue{kind: KindStringList, items: list}, true
		}
	}

	if m, ok := asMap(value); ok {
		return fieldValue{kind: KindMapping, mapping: m}, true
	}

	return fieldValue{kind: KindScalar, scalar: value}, true
}

func decodeTableEntries(list []any) []TableEntry {
	entries := make([]TableEntry, 0, len(list))
	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		entries = append(entries, TableEntry{
			Title:       getString(m, "title"),
			TableData:   getString(m, "table_data"),
			Description: getString(m, "description"),
		})
	}
	return entries
}

func decodeChartEntries(list []any) []ChartEntry {
	entries := make([]ChartEntry, 0, len(list))
	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		entries = append(entries, ChartEntry{
			Title:       getString(m, "title"),
			Description: getString(m, "description"),
		})
	}
	return entries
}

func decodeCompanyEntries(list []any) []CompanyEntry {
	entries := make([]CompanyEntry, 0, len(list))
	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		_, hasRationale := m["rationale"]
		entries = append(entries, CompanyEntry{
			Name:               getString(m, "name"),
			PerformanceSummary: getString(m, "performance_summary"),
			Rationale:          getString(m, "rationale"),
			HasRationale:       hasRationale,
		})
	}
	return entries
}

func decodeCompanyDetails(list []any) []CompanyDetail {
	details := make([]CompanyDetail, 0, len(list))
	for _, item := range list {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		detail := CompanyDetail{
			Name:            getString(m, "name"),
			Sentiment:       getString(m, "sentiment"),
			BriefSummary:    getString(m, "brief_summary"),
			Metrics:         getString(m, "metrics"),
			OutlookGuidance: getString(m, "outlook_guidance"),
		}
		if triggers, ok := asList(m["sentiment_triggers"]); ok {
			for _, t := range triggers {
				detail.SentimentTriggers = append(detail.SentimentTriggers, stringify(t))
			}
		}
		details = append(details, detail)
	}
	return details
}

// asList normalizes the list shapes produced by BSON decoding and plain
// Go construction.
func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case primitive.A:
		return []any(v), true
	case []string:
		list := make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
		return list, true
	case []map[string]any:
		list := make([]any, len(v))
		for i, m := range v {
			list[i] = m
		}
		return list, true
	default:
		return nil, false
	}
}

// asMap normalizes the mapping shapes produced by BSON decoding and plain
// Go construction.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case primitive.M:
		return map[string]any(v), true
	default:
		return nil, false
	}
}

func getString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return stringify(v)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// isEmpty reports whether a value is absent or falsy: nil, empty string,
// empty list or mapping, false, or numeric zero.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	}
	if list, ok := asList(value); ok {
		return len(list) == 0
	}
	if m, ok := asMap(value); ok {
		return len(m) == 0
	}
	return false
}
