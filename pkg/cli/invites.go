package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/cli/config"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"github.com/rosterhub/rosterhub/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInvites() *cli.Command {
	var (
		backendCfg config.Backend
		teams      []string
	)

	flags := joinFlags(
		backendCfg.Flags(),
		[]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "team",
				Usage:       "Team to collect invites for, as 'id' or 'id:name' (repeatable)",
				Destination: &teams,
			},
		},
	)

	return &cli.Command{
		Name:  "invites",
		Usage: "Aggregate pending invites for the given teams and print them as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(teams) == 0 {
				return goerr.New("at least one --team is required")
			}

			summaries, err := parseTeamArgs(teams)
			if err != nil {
				return err
			}

			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			resolver := usecase.NewResolver(client)
			invitesUC := usecase.NewInvites(client, resolver)

			cards := invitesUC.AggregateTeamInvites(ctx, summaries)

			out, err := json.MarshalIndent(cards, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal invite cards")
			}
			fmt.Println(string(out))

			return nil
		},
	}
}

// parseTeamArgs parses repeated 'id' or 'id:name' arguments
func parseTeamArgs(args []string) ([]model.TeamSummary, error) {
	summaries := make([]model.TeamSummary, 0, len(args))
	for _, arg := range args {
		id, name, _ := strings.Cut(arg, ":")
		if id == "" {
			return nil, goerr.New("invalid team argument", goerr.V("arg", arg))
		}
		summaries = append(summaries, model.TeamSummary{
			ID:   types.TeamID(id),
			Name: name,
		})
	}
	return summaries, nil
}
