package config

import (
	"log/slog"
	"slices"

	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/infra/ghapi"
	"github.com/asaleem9/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	owner      string
	exclude    []string
	apiURL     string
	token      types.GitHubToken         `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "GitHub account whose repositories are listed",
			Category:    "GitHub",
			Value:       usecase.DefaultGitHubOwner,
			Destination: &x.owner,
			Sources:     cli.EnvVars("FOLIO_GITHUB_OWNER"),
		},
		&cli.StringSliceFlag{
			Name:        "github-exclude",
			Usage:       "Repository names never listed",
			Category:    "GitHub",
			Value:       slices.Clone(usecase.DefaultExcludedRepositories),
			Destination: &x.exclude,
			Sources:     cli.EnvVars("FOLIO_GITHUB_EXCLUDE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("FOLIO_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (optional, raises rate limit)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("FOLIO_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (optional, used instead of token)",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("FOLIO_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

// New builds the GitHub API client. GitHub App credentials take precedence
// over the token; with neither, requests are unauthenticated.
func (x GitHub) New() (*ghapi.Client, error) {
	var options []ghapi.Option
	if x.apiURL != "" {
		options = append(options, ghapi.WithBaseURL(x.apiURL))
	}

	switch {
	case x.appID != 0:
		options = append(options, ghapi.WithGitHubApp(x.appID, x.installID, x.privateKey))
	case x.token != "":
		options = append(options, ghapi.WithToken(x.token))
	}

	return ghapi.New(options...)
}

func (x GitHub) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithGitHubOwner(x.owner),
		usecase.WithExcludedRepositories(x.exclude...),
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Owner", x.owner),
		slog.Any("Exclude", x.exclude),
		slog.String("APIURL", x.apiURL),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
	)
}
