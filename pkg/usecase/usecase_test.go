package usecase_test

import (
	"testing"
	"time"

	"github.com/asaleem9/folio/pkg/infra"
	"github.com/asaleem9/folio/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.V(t, uc.RepositoryCacheKeyForTest()).Equal("github:repos:asaleem9")
		gt.V(t, uc.ArticleCacheKeyForTest()).Equal("medium:articles:alithetpm")
		gt.V(t, uc.ArticleFeedURLForTest()).Equal("https://medium.com/feed/@alithetpm")
	})

	t.Run("options override defaults", func(t *testing.T) {
		uc := usecase.New(infra.New(),
			usecase.WithGitHubOwner("octocat"),
			usecase.WithMediumAuthor("someone"),
			usecase.WithCacheTTL(time.Minute),
		)
		gt.V(t, uc.RepositoryCacheKeyForTest()).Equal("github:repos:octocat")
		gt.V(t, uc.ArticleFeedURLForTest()).Equal("https://medium.com/feed/@someone")
	})

	t.Run("feed URL override keys the cache by URL", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithFeedURL("http://localhost/feed"))
		gt.V(t, uc.ArticleFeedURLForTest()).Equal("http://localhost/feed")
		gt.V(t, uc.ArticleCacheKeyForTest()).Equal("medium:articles:http://localhost/feed")
	})
}
