package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/asaleem9/folio/pkg/domain/feed"
	"github.com/asaleem9/folio/pkg/domain/model"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/asaleem9/folio/pkg/utils/metrics"
	"github.com/m-mizutani/goerr/v2"
)

// ListArticles pulls the syndication feed and returns its well-formed
// entries in document order.
func (x *UseCase) ListArticles(ctx context.Context) ([]*model.Article, error) {
	key := x.articleCacheKey()
	if articles, ok := loadCache[[]*model.Article](ctx, x, metrics.SourceMedium, key); ok {
		return articles, nil
	}

	if x.clients.FeedSource() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feed source is not configured")
	}

	feedURL := x.articleFeedURL()
	start := time.Now()
	doc, err := x.clients.FeedSource().FetchFeed(ctx, feedURL)
	metrics.ObserveUpstream(metrics.SourceMedium, start, err)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch article feed", goerr.V("url", feedURL))
	}

	articles, dropped := feed.Parse(string(doc))
	metrics.RecordsDropped(metrics.SourceMedium, dropped)

	logger := logging.From(ctx)
	if dropped > 0 {
		logger.Debug("Dropped feed items without title or link", slog.Int("dropped", dropped))
	}
	logger.Info("Fetched articles",
		slog.String("url", feedURL),
		slog.Int("kept", len(articles)),
	)

	saveCache(ctx, x, key, articles)
	return articles, nil
}
