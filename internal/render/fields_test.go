package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClassify_EmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"false", false},
		{"zero int", 0},
		{"zero float", float64(0)},
		{"empty list", []any{}},
		{"empty bson array", primitive.A{}},
		{"empty map", map[string]any{}},
		{"empty bson map", primitive.M{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := classify("sector", tt.value)
			assert.False(t, ok)
		})
	}
}

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		kind  FieldKind
	}{
		{"tables", "industry_metrics_tables", []any{map[string]any{"title": "T"}}, KindTableList},
		{"charts", "charts_and_figures", []any{map[string]any{"title": "C"}}, KindChartList},
		{"top companies", "top_companies", []any{map[string]any{"name": "A"}}, KindCompanyList},
		{"weak companies", "weak_companies", []any{map[string]any{"name": "B"}}, KindCompanyList},
		{"detail", "company_wise_detail", []any{map[string]any{"name": "C"}}, KindCompanyDetail},
		{"plain list", "analysts", []any{"x"}, KindStringList},
		{"mapping", "key_statistics", map[string]any{"k": "v"}, KindMapping},
		{"scalar", "sector", "IT", KindScalar},
		{"numeric scalar", "sector", 42, KindScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, ok := classify(tt.field, tt.value)
			require.True(t, ok)
			assert.Equal(t, tt.kind, fv.kind)
		})
	}
}

func TestClassify_BSONShapes(t *testing.T) {
	// Values decoded straight out of BSON arrive as primitive.A and
	// primitive.M rather than native Go slices and maps.
	fv, ok := classify("top_companies", primitive.A{
		primitive.M{"name": "Acme", "performance_summary": "Strong"},
	})
	require.True(t, ok)
	require.Len(t, fv.companies, 1)
	assert.Equal(t, "Acme", fv.companies[0].Name)
	assert.Equal(t, "Strong", fv.companies[0].PerformanceSummary)

	fv, ok = classify("key_statistics", primitive.M{"pe": 12.5})
	require.True(t, ok)
	assert.Equal(t, KindMapping, fv.kind)
}

func TestDecodeCompanyEntries_RationalePresence(t *testing.T) {
	entries := decodeCompanyEntries([]any{
		map[string]any{"name": "A", "performance_summary": "s", "rationale": "r"},
		map[string]any{"name": "B", "performance_summary": "s"},
		"not a map",
	})

	require.Len(t, entries, 2)
	assert.True(t, entries[0].HasRationale)
	assert.False(t, entries[1].HasRationale)
}

func TestDecodeCompanyDetails_Triggers(t *testing.T) {
	details := decodeCompanyDetails([]any{
		map[string]any{
			"name":               "Acme",
			"sentiment":          "Positive",
			"sentiment_triggers": primitive.A{"wins", 7},
		},
	})

	require.Len(t, details, 1)
	assert.Equal(t, []string{"wins", "7"}, details[0].SentimentTriggers)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "12.5", stringify(12.5))
	assert.Equal(t, "true", stringify(true))
}

func TestIsEmpty_NonEmptyValues(t *testing.T) {
	for _, v := range []any{"x", true, 1, 0.5, []any{"a"}, map[string]any{"k": 1}} {
		assert.False(t, isEmpty(v), "%v should not be empty", v)
	}
}
