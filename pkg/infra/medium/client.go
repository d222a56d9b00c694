package medium

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/domain/types"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/asaleem9/folio/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// maxFeedSize bounds the body read from the feed endpoint.
const maxFeedSize = 8 << 20

const acceptFeed = "application/rss+xml, application/xml, text/xml"

// FeedURL returns the syndication feed URL of a Medium author.
func FeedURL(author string) string {
	return "https://medium.com/feed/@" + author
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client downloads syndication feeds.
type Client struct {
	httpClient HTTPClient
}

var _ interfaces.FeedSource = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// FetchFeed returns the raw feed document. A non-2xx status is reported as
// types.ErrUpstream.
func (x *Client) FetchFeed(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create feed request", goerr.V("url", feedURL))
	}
	req.Header.Set("Accept", acceptFeed)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch feed", goerr.V("url", feedURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		safe.Drain(resp.Body)
		return nil, goerr.Wrap(types.ErrUpstream, "feed responded with unexpected status",
			goerr.V("url", feedURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize+1))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read feed body", goerr.V("url", feedURL))
	}
	if len(body) > maxFeedSize {
		safe.Drain(resp.Body)
		return nil, goerr.Wrap(types.ErrUpstream, "feed exceeds size limit",
			goerr.V("url", feedURL),
			goerr.V("limit", maxFeedSize),
		)
	}

	logging.From(ctx).Debug("Fetched feed",
		slog.String("url", feedURL),
		slog.Int("size", len(body)),
	)

	return body, nil
}
