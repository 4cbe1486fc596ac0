// Package ideasource provides clients for the external content sources the
// idea aggregation queries. Each client wraps its upstream with retry, a
// circuit breaker and a politeness rate limit, and reports failures using
// the aggregation error taxonomy.
package ideasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"recipe-catalog/internal/resilience/circuitbreaker"
	"recipe-catalog/internal/resilience/retry"
	"recipe-catalog/internal/usecase/ideas"
)

const defaultUserAgent = "recipe-catalog/1.0"

const defaultRedditBaseURL = "https://www.reddit.com"

// RedditClient fetches the daily top posts of one subreddit.
type RedditClient struct {
	subreddit string
	baseURL   string
	client    *http.Client
	limiter   *rate.Limiter
	breaker   *circuitbreaker.CircuitBreaker
	retryCfg  retry.Config
}

// NewRedditClient creates a client for one subreddit. Reddit throttles
// unauthenticated clients hard, so requests are limited to one per second
// with a small burst.
func NewRedditClient(subreddit string, client *http.Client) *RedditClient {
	return &RedditClient{
		subreddit: subreddit,
		baseURL:   defaultRedditBaseURL,
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(1), 2),
		breaker:   circuitbreaker.New(circuitbreaker.IdeaSourceConfig("reddit-" + subreddit)),
		retryCfg:  retry.IdeaFetchConfig(),
	}
}

// redditListing mirrors the subset of the listing payload we consume.
type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Score int    `json:"score"`
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchTop returns at most limit posts from the subreddit's daily top
// listing, highest ranked first.
func (c *RedditClient) FetchTop(ctx context.Context, limit int) ([]ideas.Item, error) {
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

func (c *RedditClient) doFetch(ctx context.Context, limit int) ([]ideas.Item, error) {
	url := fmt.Sprintf("%s/r/%s/top.json?t=day&limit=%d", c.baseURL, c.subreddit, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", ideas.ErrSourceMalformedResponse)
	}

	items := make([]ideas.Item, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		items = append(items, ideas.Item{
			Score: child.Data.Score,
			Title: child.Data.Title,
			URL:   child.Data.URL,
		})
	}
	return items, nil
}

// classify maps transport-level failures onto the aggregation taxonomy.
// Malformed-response errors carry their sentinel already and pass through.
func classify(err error) error {
	switch {
	case errors.Is(err, ideas.ErrSourceMalformedResponse),
		errors.Is(err, ideas.ErrSourceTimeout),
		errors.Is(err, ideas.ErrSourceUnavailable):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%v: %w", err, ideas.ErrSourceTimeout)
	case errors.Is(err, gobreaker.ErrOpenState):
		return fmt.Errorf("circuit open: %w", ideas.ErrSourceUnavailable)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%v: %w", err, ideas.ErrSourceTimeout)
	}

	return fmt.Errorf("%v: %w", err, ideas.ErrSourceUnavailable)
}
