package catalog

import (
	"sort"

	"github.com/jonathan/report-explorer/internal/types"
)

// Facets holds the distinct values available for each filter dimension,
// sorted for display.
type Facets struct {
	Companies  []string `json:"companies"`
	Categories []string `json:"categories"`
	Sources    []string `json:"sources"`
}

// CollectFacets extracts sorted distinct filter options from the analysed
// documents. Company options come from the per-document name lists, not
// the joined display string.
func CollectFacets(docs []types.ReportDocument) Facets {
	companies := make(map[string]struct{})
	categories := make(map[string]struct{})
	sources := make(map[string]struct{})

	for i := range docs {
		doc := &docs[i]
		for _, name := range doc.CompanyNames {
			if name != "" {
				companies[name] = struct{}{}
			}
		}
		if doc.Category != "" {
			categories[doc.Category] = struct{}{}
		}
		if doc.Metadata.Source != "" {
			sources[doc.Metadata.Source] = struct{}{}
		}
	}

	return Facets{
		Companies:  sortedKeys(companies),
		Categories: sortedKeys(categories),
		Sources:    sortedKeys(sources),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
