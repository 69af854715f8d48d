package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces/mocks"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/repository"
	"github.com/rosterhub/rosterhub/pkg/usecase"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Combines remote, fixture and local sources", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			SearchFunc: func(ctx context.Context, query string) ([]model.SearchResult, error) {
				return []model.SearchResult{{ID: "r1", Name: "Thunder FC"}}, nil
			},
		}

		repo := repository.NewMemory()
		gt.NoError(t, repo.SeedFixtures(ctx, []model.SearchResult{{ID: "m1", Name: "Thunder Mock"}}))
		gt.NoError(t, repo.SaveSummary(ctx, &model.SearchResult{ID: "l1", Name: "My Thunder"}))
		gt.NoError(t, repo.SaveSummary(ctx, &model.SearchResult{ID: "l2", Name: "Eagles"}))

		results := usecase.NewSearch(client, repo).Search(ctx, "thunder", true)

		gt.Equal(t, len(results), 3)
		// Sorted by name: "My Thunder", "Thunder FC", "Thunder Mock"
		gt.Equal(t, results[0].ID, "l1")
		gt.Equal(t, results[1].ID, "r1")
		gt.Equal(t, results[2].ID, "m1")
	})

	t.Run("Remote failure degrades to local sources", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			SearchFunc: func(ctx context.Context, query string) ([]model.SearchResult, error) {
				return nil, goerr.New("search service down")
			},
		}

		repo := repository.NewMemory()
		gt.NoError(t, repo.SaveSummary(ctx, &model.SearchResult{ID: "l1", Name: "Thunder"}))

		results := usecase.NewSearch(client, repo).Search(ctx, "thunder", false)

		gt.Equal(t, len(results), 1)
		gt.Equal(t, results[0].ID, "l1")
	})

	t.Run("Mocks excluded without the flag", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			SearchFunc: func(ctx context.Context, query string) ([]model.SearchResult, error) {
				return nil, nil
			},
		}

		repo := repository.NewMemory()
		gt.NoError(t, repo.SeedFixtures(ctx, []model.SearchResult{{ID: "m1", Name: "Thunder Mock"}}))

		results := usecase.NewSearch(client, repo).Search(ctx, "thunder", false)
		gt.Equal(t, len(results), 0)
	})
}
