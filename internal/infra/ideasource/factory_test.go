package ideasource

import (
	"errors"
	"testing"

	"recipe-catalog/internal/usecase/ideas"
)

func TestBuild(t *testing.T) {
	specs := []Spec{
		{ID: "recipes", Kind: KindReddit, Subreddit: "recipes"},
		{ID: "easyrecipes", Kind: KindReddit, Subreddit: "easyrecipes"},
		{ID: "kitchen-blog", Kind: KindRSS, FeedURL: "https://example.com/feed.xml"},
	}

	order, clients, err := Build(specs, nil)
	if err != nil {
		t.Fatalf("Build err=%v", err)
	}

	wantOrder := []ideas.SourceID{"recipes", "easyrecipes", "kitchen-blog"}
	if len(order) != len(wantOrder) {
		t.Fatalf("order length = %d, want %d", len(order), len(wantOrder))
	}
	for i, id := range wantOrder {
		if order[i] != id {
			t.Errorf("order[%d] = %q, want %q", i, order[i], id)
		}
	}
	for _, id := range wantOrder {
		if clients[id] == nil {
			t.Errorf("no client built for %q", id)
		}
	}
}

func TestBuild_invalidSpecs(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
	}{
		{"empty id", []Spec{{Kind: KindReddit, Subreddit: "recipes"}}},
		{"unknown kind", []Spec{{ID: "x", Kind: "gopher"}}},
		{"reddit without subreddit", []Spec{{ID: "x", Kind: KindReddit}}},
		{"rss without feed url", []Spec{{ID: "x", Kind: KindRSS}}},
		{"duplicate id", []Spec{
			{ID: "x", Kind: KindReddit, Subreddit: "a"},
			{ID: "x", Kind: KindReddit, Subreddit: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Build(tt.specs, nil); !errors.Is(err, ideas.ErrInvalidArgument) {
				t.Errorf("want ErrInvalidArgument, got %v", err)
			}
		})
	}
}
