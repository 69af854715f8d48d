package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
)

// Search combines the live backend query with the local store sources.
// A failing remote query degrades to an empty remote source; browse
// screens always get a result list, never an error.
type Search struct {
	client interfaces.BackendClient
	repo   interfaces.Repository
}

// NewSearch creates a new search usecase
func NewSearch(client interfaces.BackendClient, repo interfaces.Repository) *Search {
	return &Search{
		client: client,
		repo:   repo,
	}
}

var _ SearchUseCase = &Search{}

// Search runs the remote query, gathers fixture and locally filtered
// sources from the repository and merges them
func (u *Search) Search(ctx context.Context, query string, includeMocks bool) []model.SearchResult {
	logger := ctxlog.From(ctx)

	remote, err := u.client.Search(ctx, query)
	if err != nil {
		logger.Error("Remote search failed, continuing with local sources",
			"query", query,
			"error", err,
		)
		remote = nil
	}

	var mocks []model.SearchResult
	if includeMocks {
		mocks, err = u.repo.ListFixtures(ctx)
		if err != nil {
			logger.Error("Failed to list fixtures", "error", err)
			mocks = nil
		}
	}

	local, err := u.repo.FilterSummaries(ctx, query)
	if err != nil {
		logger.Error("Failed to filter local summaries", "query", query, "error", err)
		local = nil
	}

	merged := MergeResults(MergeSources{
		Remote: remote,
		Mocks:  mocks,
		Local:  local,
	}, model.MergeOptions{
		Query:        query,
		IncludeMocks: includeMocks,
	})

	logger.Debug("Search completed",
		"query", query,
		"remote", len(remote),
		"mocks", len(mocks),
		"local", len(local),
		"merged", len(merged),
	)

	return merged
}
