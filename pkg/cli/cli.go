package cli

import (
	"context"
	"log/slog"

	"github.com/asaleem9/folio/pkg/cli/config"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

// Run parses argv and executes the selected subcommand: serve for the HTTP
// API, repos and articles for one-shot pulls printed to Stdout.
func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "folio",
		Usage: "Content service of the portfolio site (repositories, articles, contact relay)",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			reposCommand(),
			articlesCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logger configured", slog.Any("Logging", &logCfg))
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
