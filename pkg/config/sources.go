package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IdeaSource describes one external content source for the ideas endpoint.
type IdeaSource struct {
	ID        string `yaml:"id"`
	Kind      string `yaml:"kind"`
	Subreddit string `yaml:"subreddit,omitempty"`
	FeedURL   string `yaml:"feed_url,omitempty"`
}

// ideaSourcesFile is the YAML document shape for IDEA_SOURCES_FILE.
type ideaSourcesFile struct {
	Sources []IdeaSource `yaml:"sources"`
}

// Default subreddits queried when no explicit configuration is given.
var defaultSubreddits = []string{"recipes", "easyrecipes"}

// LoadIdeaSources resolves the configured idea sources. When
// IDEA_SOURCES_FILE points to a YAML file it is authoritative; otherwise
// the IDEA_SOURCE_SUBREDDITS list (comma-separated) builds reddit sources,
// falling back to the default subreddit pair.
func LoadIdeaSources() ([]IdeaSource, error) {
	if path := os.Getenv("IDEA_SOURCES_FILE"); path != "" {
		return loadIdeaSourcesFile(path)
	}

	subreddits := GetEnvStringList("IDEA_SOURCE_SUBREDDITS", defaultSubreddits)
	sources := make([]IdeaSource, 0, len(subreddits))
	for _, sub := range subreddits {
		sources = append(sources, IdeaSource{ID: sub, Kind: "reddit", Subreddit: sub})
	}
	return sources, nil
}

func loadIdeaSourcesFile(path string) ([]IdeaSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read idea sources file: %w", err)
	}

	var doc ideaSourcesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse idea sources file %s: %w", path, err)
	}
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("idea sources file %s lists no sources", path)
	}
	return doc.Sources, nil
}
