package ghapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// Client reads public repository metadata from the GitHub REST API.
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
	baseURL    string
	transport  http.RoundTripper
	timeout    time.Duration
}

type Option func(*config)

// WithToken authenticates requests with a personal access token.
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithGitHubApp authenticates requests as a GitHub App installation. It takes
// precedence over WithToken.
func WithGitHubApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.installID = installID
		cfg.privateKey = privateKey
	}
}

// WithBaseURL points the client at another API endpoint, e.g. GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		transport: http.DefaultTransport,
		timeout:   30 * time.Second,
	}
	for _, opt := range options {
		opt(cfg)
	}

	tr := cfg.transport
	switch {
	case cfg.appID != 0:
		if cfg.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
		}
		if cfg.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is empty")
		}

		itr, err := ghinstallation.New(tr, int64(cfg.appID), int64(cfg.installID), []byte(cfg.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", cfg.appID))
		}
		tr = itr

	case cfg.token != "":
		tr = &bearerTransport{base: tr, token: cfg.token}
	}

	client := github.NewClient(&http.Client{Transport: tr, Timeout: cfg.timeout})

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

// ListUserRepositories fetches one page of owner's repositories, sorted by
// last update. Any non-2xx response is returned as an error.
func (x *Client) ListUserRepositories(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
	if owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository owner is empty")
	}

	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	repos, resp, err := x.client.Repositories.List(ctx, owner, opt)
	if err != nil {
		values := []goerr.Option{goerr.V("owner", owner)}
		if resp != nil {
			values = append(values, goerr.V("status", resp.StatusCode))
		}
		return nil, goerr.Wrap(err, "failed to list repositories", values...)
	}

	result := make([]*model.GitHubAPIRepository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toAPIRepository(repo))
	}

	logging.From(ctx).Debug("Listed user repositories",
		slog.String("owner", owner),
		slog.Int("count", len(result)),
	)

	return result, nil
}

func toAPIRepository(repo *github.Repository) *model.GitHubAPIRepository {
	var updatedAt string
	if repo.UpdatedAt != nil {
		updatedAt = repo.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return &model.GitHubAPIRepository{
		ID:              repo.GetID(),
		Name:            repo.GetName(),
		Description:     repo.Description,
		HTMLURL:         repo.GetHTMLURL(),
		Homepage:        repo.Homepage,
		Language:        repo.Language,
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		UpdatedAt:       updatedAt,
		Topics:          repo.Topics,
		Fork:            repo.GetFork(),
		Archived:        repo.GetArchived(),
	}
}

type bearerTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(req)
}
