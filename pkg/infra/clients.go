package infra

import (
	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/repository/memory"
)

// Clients bundles the outbound dependencies of the use case layer.
type Clients struct {
	github interfaces.GitHub
	feed   interfaces.FeedSource
	mailer interfaces.Mailer
	cache  interfaces.Cache
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cache: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) FeedSource() interfaces.FeedSource {
	return x.feed
}

// Mailer returns nil when no email service is configured.
func (x *Clients) Mailer() interfaces.Mailer {
	return x.mailer
}

// Cache returns nil when response caching is disabled.
func (x *Clients) Cache() interfaces.Cache {
	return x.cache
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithFeedSource(client interfaces.FeedSource) Option {
	return func(x *Clients) {
		x.feed = client
	}
}

func WithMailer(client interfaces.Mailer) Option {
	return func(x *Clients) {
		x.mailer = client
	}
}

// WithCache replaces the default in-memory cache. Passing nil disables caching.
func WithCache(cache interfaces.Cache) Option {
	return func(x *Clients) {
		x.cache = cache
	}
}
