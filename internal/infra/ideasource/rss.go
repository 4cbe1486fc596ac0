package ideasource

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"recipe-catalog/internal/resilience/circuitbreaker"
	"recipe-catalog/internal/resilience/retry"
	"recipe-catalog/internal/usecase/ideas"
)

// RSSClient fetches recipe ideas from an RSS or Atom feed using gofeed.
// Feeds carry no vote counts, so items keep a zero score and feed order.
type RSSClient struct {
	feedURL  string
	client   *http.Client
	limiter  *rate.Limiter
	breaker  *circuitbreaker.CircuitBreaker
	retryCfg retry.Config
}

// NewRSSClient creates a client for one feed URL.
func NewRSSClient(name, feedURL string, client *http.Client) *RSSClient {
	return &RSSClient{
		feedURL:  feedURL,
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(1), 2),
		breaker:  circuitbreaker.New(circuitbreaker.IdeaSourceConfig("rss-" + name)),
		retryCfg: retry.IdeaFetchConfig(),
	}
}

// FetchTop returns at most limit entries from the feed, in feed order.
func (c *RSSClient) FetchTop(ctx context.Context, limit int) ([]ideas.Item, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classify(err)
	}

	var items []ideas.Item
	retryErr := retry.WithBackoff(ctx, c.retryCfg, func() error {
		result, err := c.breaker.Execute(func() (interface{}, error) {
			return c.doFetch(ctx, limit)
		})
		if err != nil {
			return err
		}
		items = result.([]ideas.Item)
		return nil
	})
	if retryErr != nil {
		return nil, classify(retryErr)
	}

	return items, nil
}

func (c *RSSClient) doFetch(ctx context.Context, limit int) ([]ideas.Item, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = defaultUserAgent
	fp.Client = c.client

	feed, err := fp.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &retry.HTTPError{StatusCode: httpErr.StatusCode, Message: httpErr.Status}
		}
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return nil, fmt.Errorf("%v: %w", err, ideas.ErrSourceMalformedResponse)
		}
		return nil, err
	}

	items := make([]ideas.Item, 0, limit)
	for _, it := range feed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, ideas.Item{
			Title: it.Title,
			URL:   it.Link,
		})
	}
	return items, nil
}
