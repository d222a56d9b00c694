package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// Stdout is the destination of fetched records. Replaced in tests.
var Stdout io.Writer = os.Stdout

func printJSON(v any) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

func reposCommand() *cli.Command {
	var (
		language string
		sortBy   string

		feeds feedConfig
	)

	return &cli.Command{
		Name:  "repos",
		Usage: "Fetch the repository feed once and print it as JSON",
		Flags: slice.Flatten(
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "language",
					Usage:       "Only list repositories with this primary language",
					Destination: &language,
				},
				&cli.StringFlag{
					Name:        "sort",
					Usage:       "Sort key [updated|stars|forks|name]",
					Value:       string(model.SortByUpdated),
					Destination: &sortBy,
				},
			},
			feeds.github.Flags(),
			feeds.cache.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			key, err := model.ParseRepositorySortKey(sortBy)
			if err != nil {
				return err
			}

			uc, closeClients, err := feeds.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closeClients()

			repos, err := uc.ListRepositories(ctx, model.RepositoryQuery{
				Language: language,
				SortBy:   key,
			})
			if err != nil {
				return err
			}

			return printJSON(repos)
		},
	}
}

func articlesCommand() *cli.Command {
	var feeds feedConfig

	return &cli.Command{
		Name:  "articles",
		Usage: "Fetch the article feed once and print it as JSON",
		Flags: slice.Flatten(
			feeds.medium.Flags(),
			feeds.cache.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closeClients, err := feeds.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closeClients()

			articles, err := uc.ListArticles(ctx)
			if err != nil {
				return err
			}

			return printJSON(articles)
		},
	}
}
