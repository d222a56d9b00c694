package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/asaleem9/folio/pkg/domain/model"
)

type UseCase interface {
	ListRepositories(ctx context.Context, query model.RepositoryQuery) ([]*model.Repository, error)
	ListRepositoryLanguages(ctx context.Context) ([]string, error)
	ListArticles(ctx context.Context) ([]*model.Article, error)
	SendContact(ctx context.Context, msg *model.ContactMessage) error
}
