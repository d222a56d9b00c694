package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/asaleem9/folio/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// ListRepositories returns the owner's displayable repositories with query
// applied. Forks, archived repositories and denylisted names are excluded.
func (x *UseCase) ListRepositories(ctx context.Context, query model.RepositoryQuery) ([]*model.Repository, error) {
	repos, err := x.repositories(ctx)
	if err != nil {
		return nil, err
	}
	return query.Apply(repos), nil
}

// ListRepositoryLanguages returns the distinct primary languages of the
// displayable repositories.
func (x *UseCase) ListRepositoryLanguages(ctx context.Context) ([]string, error) {
	repos, err := x.repositories(ctx)
	if err != nil {
		return nil, err
	}
	return model.RepositoryLanguages(repos), nil
}

func (x *UseCase) repositories(ctx context.Context) ([]*model.Repository, error) {
	key := x.repositoryCacheKey()
	if repos, ok := loadCache[[]*model.Repository](ctx, x, metrics.SourceGitHub, key); ok {
		return repos, nil
	}

	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	start := time.Now()
	src, err := x.clients.GitHub().ListUserRepositories(ctx, x.githubOwner, repositoriesPerPage)
	metrics.ObserveUpstream(metrics.SourceGitHub, start, err)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", x.githubOwner))
	}

	repos := x.normalizeRepositories(ctx, src)
	metrics.RecordsDropped(metrics.SourceGitHub, len(src)-len(repos))

	logging.From(ctx).Info("Fetched repositories",
		slog.String("owner", x.githubOwner),
		slog.Int("fetched", len(src)),
		slog.Int("kept", len(repos)),
	)

	saveCache(ctx, x, key, repos)
	return repos, nil
}

func (x *UseCase) normalizeRepositories(ctx context.Context, src []*model.GitHubAPIRepository) []*model.Repository {
	logger := logging.From(ctx)

	repos := make([]*model.Repository, 0, len(src))
	for _, r := range src {
		if r == nil {
			continue
		}

		if r.Fork {
			logger.Debug("Skipping forked repository", slog.String("repo", r.Name))
			continue
		}
		if r.Archived {
			logger.Debug("Skipping archived repository", slog.String("repo", r.Name))
			continue
		}
		if _, ok := x.excluded[r.Name]; ok {
			logger.Debug("Skipping excluded repository", slog.String("repo", r.Name))
			continue
		}

		repo := model.NewRepository(r)
		if !repo.Valid() {
			logger.Debug("Skipping malformed repository",
				slog.Int64("id", r.ID),
				slog.String("repo", r.Name),
			)
			continue
		}
		repos = append(repos, repo)
	}

	return repos
}
