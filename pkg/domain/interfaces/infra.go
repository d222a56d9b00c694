package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub FeedSource Mailer

import (
	"context"

	"github.com/asaleem9/folio/pkg/domain/model"
)

type GitHub interface {
	// ListUserRepositories returns a single page of the owner's repositories,
	// most recently updated first.
	ListUserRepositories(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error)
}

type FeedSource interface {
	// FetchFeed returns the raw syndication document served at feedURL.
	FetchFeed(ctx context.Context, feedURL string) ([]byte, error)
}

type Mailer interface {
	SendContact(ctx context.Context, msg *model.ContactMessage) error
}
