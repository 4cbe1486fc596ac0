package ideasource

import (
	"fmt"
	"net/http"

	"recipe-catalog/internal/usecase/ideas"
)

// Source kinds accepted in configuration.
const (
	KindReddit = "reddit"
	KindRSS    = "rss"
)

// Spec describes one configured source. Which field matters depends on
// Kind: reddit sources name a subreddit, rss sources name a feed URL.
type Spec struct {
	ID        string `yaml:"id"`
	Kind      string `yaml:"kind"`
	Subreddit string `yaml:"subreddit,omitempty"`
	FeedURL   string `yaml:"feed_url,omitempty"`
}

// Build turns source specs into aggregation clients. The returned order
// matches the configured order and is the order outcomes are reported in.
func Build(specs []Spec, client *http.Client) ([]ideas.SourceID, map[ideas.SourceID]ideas.Client, error) {
	if client == nil {
		client = http.DefaultClient
	}

	order := make([]ideas.SourceID, 0, len(specs))
	clients := make(map[ideas.SourceID]ideas.Client, len(specs))

	for _, spec := range specs {
		if spec.ID == "" {
			return nil, nil, fmt.Errorf("source with empty id: %w", ideas.ErrInvalidArgument)
		}
		id := ideas.SourceID(spec.ID)
		if _, dup := clients[id]; dup {
			return nil, nil, fmt.Errorf("duplicate source id %q: %w", spec.ID, ideas.ErrInvalidArgument)
		}

		switch spec.Kind {
		case KindReddit:
			if spec.Subreddit == "" {
				return nil, nil, fmt.Errorf("reddit source %q needs a subreddit: %w", spec.ID, ideas.ErrInvalidArgument)
			}
			clients[id] = NewRedditClient(spec.Subreddit, client)
		case KindRSS:
			if spec.FeedURL == "" {
				return nil, nil, fmt.Errorf("rss source %q needs a feed_url: %w", spec.ID, ideas.ErrInvalidArgument)
			}
			clients[id] = NewRSSClient(spec.ID, spec.FeedURL, client)
		default:
			return nil, nil, fmt.Errorf("source %q has unknown kind %q: %w", spec.ID, spec.Kind, ideas.ErrInvalidArgument)
		}

		order = append(order, id)
	}

	return order, clients, nil
}
