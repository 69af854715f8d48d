package usecase

import (
	"sort"

	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MergeSources are the search result lists to combine, in fixed
// precedence order: remote query results first, then mock fixtures,
// then locally filtered summaries.
type MergeSources struct {
	Remote []model.SearchResult
	Mocks  []model.SearchResult
	Local  []model.SearchResult
}

// MergeResults combines the sources into one list: fixtures are dropped
// unless opts.IncludeMocks is set, duplicates by ID are removed with the
// first occurrence winning, and the result is sorted by name with a
// case-insensitive locale-aware comparison. The sort is stable, so
// precedence order only breaks name ties. Pure function, no I/O.
func MergeResults(src MergeSources, opts model.MergeOptions) []model.SearchResult {
	ordered := make([]model.SearchResult, 0, len(src.Remote)+len(src.Mocks)+len(src.Local))
	ordered = append(ordered, src.Remote...)
	if opts.IncludeMocks {
		ordered = append(ordered, src.Mocks...)
	}
	ordered = append(ordered, src.Local...)

	seen := make(map[string]bool, len(ordered))
	merged := make([]model.SearchResult, 0, len(ordered))
	for _, r := range ordered {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		merged = append(merged, r)
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(merged, func(i, j int) bool {
		return c.CompareString(merged[i].Name, merged[j].Name) < 0
	})

	return merged
}
