package config

import (
	"log/slog"

	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logging holds the global log flags shared by every subcommand.
type Logging struct {
	level  string
	format string
	output string
}

func (x *Logging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Category:    "Logging",
			Value:       "info",
			Destination: &x.level,
			Sources:     cli.EnvVars("FOLIO_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Category:    "Logging",
			Value:       "text",
			Destination: &x.format,
			Sources:     cli.EnvVars("FOLIO_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Category:    "Logging",
			Value:       "-",
			Destination: &x.output,
			Sources:     cli.EnvVars("FOLIO_LOG_OUTPUT"),
		},
	}
}

// Configure replaces the default logger.
func (x *Logging) Configure() error {
	return logging.Configure(x.format, x.level, x.output)
}

func (x *Logging) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Level", x.level),
		slog.String("Format", x.format),
		slog.String("Output", x.output),
	)
}
