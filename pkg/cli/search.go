package cli

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/cli/config"
	"github.com/rosterhub/rosterhub/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSearch() *cli.Command {
	var (
		backendCfg  config.Backend
		fixturesCfg config.Fixtures
		query       string
	)

	flags := joinFlags(
		backendCfg.Flags(),
		fixturesCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "Free-text entity query",
				Required:    true,
				Destination: &query,
			},
		},
	)

	return &cli.Command{
		Name:  "search",
		Usage: "Run a merged entity search and print the results as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := fixturesCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			searchUC := usecase.NewSearch(client, repo)
			results := searchUC.Search(ctx, query, fixturesCfg.IncludeMocks)

			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal search results")
			}
			fmt.Println(string(out))

			return nil
		},
	}
}
