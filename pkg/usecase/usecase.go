package usecase

import (
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/infra"
	"github.com/asaleem9/folio/pkg/infra/medium"
)

const (
	DefaultGitHubOwner  = "asaleem9"
	DefaultMediumAuthor = "alithetpm"
	DefaultCacheTTL     = time.Hour

	// Upstream returns at most one page; there is no pagination.
	repositoriesPerPage = 100
)

// DefaultExcludedRepositories are never shown on the portfolio.
var DefaultExcludedRepositories = []string{"personal-site", "asaleem9"}

type UseCase struct {
	clients *infra.Clients

	githubOwner  string
	excluded     map[string]struct{}
	mediumAuthor string
	feedURL      string
	cacheTTL     time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithGitHubOwner sets the account whose public repositories are listed.
func WithGitHubOwner(owner string) Option {
	return func(x *UseCase) {
		x.githubOwner = owner
	}
}

// WithExcludedRepositories replaces the repository name denylist.
func WithExcludedRepositories(names ...string) Option {
	return func(x *UseCase) {
		x.excluded = make(map[string]struct{}, len(names))
		for _, name := range names {
			x.excluded[name] = struct{}{}
		}
	}
}

func WithMediumAuthor(author string) Option {
	return func(x *UseCase) {
		x.mediumAuthor = author
	}
}

// WithFeedURL overrides the feed address derived from the Medium author.
func WithFeedURL(feedURL string) Option {
	return func(x *UseCase) {
		x.feedURL = feedURL
	}
}

// WithCacheTTL sets how long pulled feeds are reused. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.cacheTTL = ttl
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		githubOwner:  DefaultGitHubOwner,
		mediumAuthor: DefaultMediumAuthor,
		cacheTTL:     DefaultCacheTTL,
	}
	WithExcludedRepositories(DefaultExcludedRepositories...)(uc)

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) articleFeedURL() string {
	if x.feedURL != "" {
		return x.feedURL
	}
	return medium.FeedURL(x.mediumAuthor)
}

func (x *UseCase) articleCacheKey() string {
	if x.feedURL != "" {
		return "medium:articles:" + x.feedURL
	}
	return "medium:articles:" + x.mediumAuthor
}

func (x *UseCase) repositoryCacheKey() string {
	return "github:repos:" + x.githubOwner
}
