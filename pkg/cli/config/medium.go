package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/asaleem9/folio/pkg/infra/medium"
	"github.com/asaleem9/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Medium struct {
	author  string
	feedURL string
	timeout time.Duration
}

func (x *Medium) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "medium-author",
			Usage:       "Medium author whose feed is listed",
			Category:    "Medium",
			Value:       usecase.DefaultMediumAuthor,
			Destination: &x.author,
			Sources:     cli.EnvVars("FOLIO_MEDIUM_AUTHOR"),
		},
		&cli.StringFlag{
			Name:        "medium-feed-url",
			Usage:       "Feed URL, overrides the one derived from the author",
			Category:    "Medium",
			Destination: &x.feedURL,
			Sources:     cli.EnvVars("FOLIO_MEDIUM_FEED_URL"),
		},
		&cli.DurationFlag{
			Name:        "medium-timeout",
			Usage:       "Timeout of the feed request",
			Category:    "Medium",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("FOLIO_MEDIUM_TIMEOUT"),
		},
	}
}

func (x Medium) New() *medium.Client {
	return medium.New(medium.WithHTTPClient(&http.Client{Timeout: x.timeout}))
}

func (x Medium) UseCaseOptions() []usecase.Option {
	options := []usecase.Option{
		usecase.WithMediumAuthor(x.author),
	}
	if x.feedURL != "" {
		options = append(options, usecase.WithFeedURL(x.feedURL))
	}
	return options
}

func (x Medium) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Author", x.author),
		slog.String("FeedURL", x.feedURL),
		slog.Duration("Timeout", x.timeout),
	)
}
