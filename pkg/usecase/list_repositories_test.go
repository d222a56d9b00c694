package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asaleem9/folio/pkg/domain/mock"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/infra"
	"github.com/asaleem9/folio/pkg/repository/memory"
	"github.com/asaleem9/folio/pkg/usecase"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func strPtr(s string) *string { return &s }

func upstreamRepositories() []*model.GitHubAPIRepository {
	return []*model.GitHubAPIRepository{
		{ID: 1, Name: "forked", Fork: true, Language: strPtr("Go"), UpdatedAt: "2024-03-01T00:00:00Z"},
		{ID: 2, Name: "personal-site", Language: strPtr("TypeScript"), UpdatedAt: "2024-02-01T00:00:00Z"},
		{
			ID:              3,
			Name:            "folio",
			Description:     strPtr("portfolio backend"),
			HTMLURL:         "https://github.com/asaleem9/folio",
			Homepage:        strPtr(""),
			Language:        strPtr("Go"),
			StargazersCount: 5,
			ForksCount:      1,
			UpdatedAt:       "2024-01-01T00:00:00Z",
		},
	}
}

func TestListRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("fork and denylisted repositories are excluded", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				gt.V(t, owner).Equal("asaleem9")
				gt.V(t, perPage).Equal(100)
				return upstreamRepositories(), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(nil)))

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, repos).Length(1)
		gt.V(t, *repos[0]).Equal(model.Repository{
			ID:              3,
			Name:            "folio",
			Description:     strPtr("portfolio backend"),
			HTMLURL:         "https://github.com/asaleem9/folio",
			Homepage:        nil,
			Language:        strPtr("Go"),
			StargazersCount: 5,
			ForksCount:      1,
			UpdatedAt:       "2024-01-01T00:00:00Z",
			Topics:          []string{},
		})
	})

	t.Run("archived and malformed repositories are excluded", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return []*model.GitHubAPIRepository{
					{ID: 10, Name: "old", Archived: true},
					{ID: 0, Name: "no-id"},
					{ID: 11, Name: ""},
					nil,
					{ID: 12, Name: "kept"},
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(nil)))

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, repos).Length(1)
		gt.V(t, repos[0].Name).Equal("kept")
	})

	t.Run("custom denylist replaces the default", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		uc := usecase.New(
			infra.New(infra.WithGitHub(mockGH), infra.WithCache(nil)),
			usecase.WithExcludedRepositories("folio"),
		)

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, repos).Length(1)
		gt.V(t, repos[0].Name).Equal("personal-site")
	})

	t.Run("query is applied", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return []*model.GitHubAPIRepository{
					{ID: 1, Name: "a", Language: strPtr("Go"), StargazersCount: 1},
					{ID: 2, Name: "b", Language: strPtr("Python"), StargazersCount: 9},
					{ID: 3, Name: "c", Language: strPtr("Go"), StargazersCount: 4},
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(nil)))

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{
			Language: "Go",
			SortBy:   model.SortByStars,
		})).NoError(t)
		gt.A(t, repos).Length(2)
		gt.V(t, repos[0].Name).Equal("c")
		gt.V(t, repos[1].Name).Equal("a")
	})

	t.Run("upstream failure is returned", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return nil, goerr.Wrap(types.ErrUpstream, "status 503")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(nil)))

		_, err := uc.ListRepositories(ctx, model.RepositoryQuery{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUpstream))
	})

	t.Run("GitHub client not configured", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithCache(nil)))
		_, err := uc.ListRepositories(ctx, model.RepositoryQuery{})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestListRepositoriesCache(t *testing.T) {
	ctx := context.Background()

	t.Run("second pull is served from cache", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(memory.New())))

		first := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		second := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{SortBy: model.SortByName})).NoError(t)
		langs := gt.R1(uc.ListRepositoryLanguages(ctx)).NoError(t)

		gt.A(t, mockGH.ListUserRepositoriesCalls()).Length(1)
		gt.V(t, second).Equal(first)
		gt.V(t, langs).Equal([]string{"Go"})
	})

	t.Run("expired entry triggers a new pull", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		uc := usecase.New(
			infra.New(infra.WithGitHub(mockGH), infra.WithCache(memory.New())),
			usecase.WithCacheTTL(time.Minute),
		)

		now := time.Now()
		ctx := logging.CtxWithTime(ctx, func() time.Time { return now })
		gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)

		later := now.Add(2 * time.Minute)
		ctx = logging.CtxWithTime(ctx, func() time.Time { return later })
		gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)

		gt.A(t, mockGH.ListUserRepositoriesCalls()).Length(2)
	})

	t.Run("zero TTL disables cache", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		mockCache := &mock.CacheMock{}
		uc := usecase.New(
			infra.New(infra.WithGitHub(mockGH), infra.WithCache(mockCache)),
			usecase.WithCacheTTL(0),
		)

		gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, mockGH.ListUserRepositoriesCalls()).Length(2)
		gt.A(t, mockCache.GetCalls()).Length(0)
	})

	t.Run("cache failures fall back to upstream", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		mockCache := &mock.CacheMock{
			GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) {
				return nil, false, errors.New("connection refused")
			},
			SetFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
				return errors.New("connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(mockCache)))

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, repos).Length(1)
		gt.A(t, mockCache.SetCalls()).Length(1)
		gt.V(t, mockCache.SetCalls()[0].Key).Equal("github:repos:asaleem9")
		gt.V(t, mockCache.SetCalls()[0].TTL).Equal(time.Hour)
	})

	t.Run("corrupted entry is ignored", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListUserRepositoriesFunc: func(ctx context.Context, owner string, perPage int) ([]*model.GitHubAPIRepository, error) {
				return upstreamRepositories(), nil
			},
		}
		mockCache := &mock.CacheMock{
			GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) {
				return []byte("{not json"), true, nil
			},
			SetFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithCache(mockCache)))

		repos := gt.R1(uc.ListRepositories(ctx, model.RepositoryQuery{})).NoError(t)
		gt.A(t, repos).Length(1)
		gt.A(t, mockGH.ListUserRepositoriesCalls()).Length(1)
	})
}
