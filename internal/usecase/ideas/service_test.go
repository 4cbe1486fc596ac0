package ideas_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"recipe-catalog/internal/usecase/ideas"
)

// clientFunc adapts a function to the ideas.Client interface.
type clientFunc func(ctx context.Context, limit int) ([]ideas.Item, error)

func (f clientFunc) FetchTop(ctx context.Context, limit int) ([]ideas.Item, error) {
	return f(ctx, limit)
}

func fixedItems(items ...ideas.Item) clientFunc {
	return func(context.Context, int) ([]ideas.Item, error) { return items, nil }
}

func failing(err error) clientFunc {
	return func(context.Context, int) ([]ideas.Item, error) { return nil, err }
}

// slowItems waits for the delay or the context, whichever comes first.
func slowItems(delay time.Duration, items ...ideas.Item) clientFunc {
	return func(ctx context.Context, _ int) ([]ideas.Item, error) {
		select {
		case <-time.After(delay):
			return items, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func newService(t *testing.T, order []ideas.SourceID, clients map[ideas.SourceID]ideas.Client, cfg ideas.Config) *ideas.Service {
	t.Helper()
	svc, err := ideas.NewService(order, clients, cfg)
	if err != nil {
		t.Fatalf("NewService err=%v", err)
	}
	return svc
}

func TestAggregate_allSucceed(t *testing.T) {
	pasta := ideas.Item{Score: 40, Title: "weeknight pasta", URL: "https://example.com/pasta"}
	curry := ideas.Item{Score: 25, Title: "quick curry", URL: "https://example.com/curry"}

	svc := newService(t,
		[]ideas.SourceID{"recipes", "easyrecipes"},
		map[ideas.SourceID]ideas.Client{
			"recipes":     fixedItems(pasta),
			"easyrecipes": fixedItems(curry),
		},
		ideas.Config{Limit: 5},
	)

	result, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}

	want := []ideas.Outcome{
		{SourceID: "recipes", Items: []ideas.Item{pasta}},
		{SourceID: "easyrecipes", Items: []ideas.Item{curry}},
	}
	if diff := cmp.Diff(want, result.Outcomes()); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_oneSourceFailureIsIsolated(t *testing.T) {
	pasta := ideas.Item{Score: 40, Title: "weeknight pasta", URL: "https://example.com/pasta"}

	svc := newService(t,
		[]ideas.SourceID{"recipes", "broken"},
		map[ideas.SourceID]ideas.Client{
			"recipes": fixedItems(pasta),
			"broken":  failing(fmt.Errorf("dial tcp: %w", ideas.ErrSourceUnavailable)),
		},
		ideas.Config{Limit: 5},
	)

	result, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}

	outcomes := result.Outcomes()
	if len(outcomes) != 2 {
		t.Fatalf("want 2 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].OK() {
		t.Errorf("healthy source must not be affected: %+v", outcomes[0].Failure)
	}
	if outcomes[1].OK() {
		t.Fatal("broken source reported success")
	}
	if got := outcomes[1].Failure.Kind; got != ideas.FailureUnavailable {
		t.Errorf("failure kind = %q, want %q", got, ideas.FailureUnavailable)
	}
}

func TestAggregate_failureClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ideas.FailureKind
	}{
		{"wrapped timeout", fmt.Errorf("fetch: %w", ideas.ErrSourceTimeout), ideas.FailureTimeout},
		{"bare deadline", context.DeadlineExceeded, ideas.FailureTimeout},
		{"malformed payload", fmt.Errorf("decode: %w", ideas.ErrSourceMalformedResponse), ideas.FailureMalformed},
		{"connection refused", errors.New("connection refused"), ideas.FailureUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t,
				[]ideas.SourceID{"src"},
				map[ideas.SourceID]ideas.Client{"src": failing(tt.err)},
				ideas.Config{Limit: 5},
			)

			result, err := svc.Aggregate(context.Background())
			if err != nil {
				t.Fatalf("Aggregate err=%v", err)
			}
			outcome, ok := result.Get("src")
			if !ok || outcome.Failure == nil {
				t.Fatalf("want classified failure, got %+v", outcome)
			}
			if outcome.Failure.Kind != tt.want {
				t.Errorf("kind = %q, want %q", outcome.Failure.Kind, tt.want)
			}
		})
	}
}

func TestAggregate_preservesConfiguredOrder(t *testing.T) {
	// The slowest source comes first in configuration; it must still come
	// first in the result even though the others finish long before it.
	svc := newService(t,
		[]ideas.SourceID{"slow", "fast", "medium"},
		map[ideas.SourceID]ideas.Client{
			"slow":   slowItems(80 * time.Millisecond),
			"fast":   slowItems(1 * time.Millisecond),
			"medium": slowItems(30 * time.Millisecond),
		},
		ideas.Config{Limit: 3},
	)

	result, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}

	var got []ideas.SourceID
	for _, o := range result.Outcomes() {
		got = append(got, o.SourceID)
	}
	want := []ideas.SourceID{"slow", "fast", "medium"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_sourcesRunConcurrently(t *testing.T) {
	// Three sources at 100ms each: sequential execution would need 300ms.
	const delay = 100 * time.Millisecond
	clients := map[ideas.SourceID]ideas.Client{
		"a": slowItems(delay),
		"b": slowItems(delay),
		"c": slowItems(delay),
	}
	svc := newService(t, []ideas.SourceID{"a", "b", "c"}, clients, ideas.Config{Limit: 1})

	start := time.Now()
	if _, err := svc.Aggregate(context.Background()); err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}
	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		t.Errorf("fan-out took %v, sources appear to run sequentially", elapsed)
	}
}

func TestAggregate_perSourceTimeout(t *testing.T) {
	svc := newService(t,
		[]ideas.SourceID{"stuck", "fast"},
		map[ideas.SourceID]ideas.Client{
			"stuck": slowItems(5 * time.Second),
			"fast":  fixedItems(ideas.Item{Title: "soup", URL: "https://example.com/soup"}),
		},
		ideas.Config{Limit: 1, PerSourceTimeout: 50 * time.Millisecond, OverallDeadline: time.Second},
	)

	start := time.Now()
	result, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("aggregation blocked for %v past the per-source timeout", elapsed)
	}

	stuck, _ := result.Get("stuck")
	if stuck.OK() || stuck.Failure.Kind != ideas.FailureTimeout {
		t.Errorf("stuck source outcome = %+v, want timeout", stuck)
	}
	fast, _ := result.Get("fast")
	if !fast.OK() {
		t.Errorf("fast source must succeed despite sibling timeout: %+v", fast.Failure)
	}
}

func TestAggregate_emptySourceList(t *testing.T) {
	svc := newService(t, nil, map[ideas.SourceID]ideas.Client{}, ideas.Config{Limit: 5})

	if _, err := svc.Aggregate(context.Background()); !errors.Is(err, ideas.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestAggregate_nonPositiveLimit(t *testing.T) {
	clients := map[ideas.SourceID]ideas.Client{"src": fixedItems()}

	for _, limit := range []int{0, -3} {
		svc := newService(t, []ideas.SourceID{"src"}, clients, ideas.Config{Limit: limit})
		if _, err := svc.Aggregate(context.Background()); !errors.Is(err, ideas.ErrInvalidArgument) {
			t.Errorf("limit %d: want ErrInvalidArgument, got %v", limit, err)
		}
	}
}

func TestAggregate_emptySuccessIsNotFailure(t *testing.T) {
	svc := newService(t,
		[]ideas.SourceID{"quiet"},
		map[ideas.SourceID]ideas.Client{"quiet": fixedItems()},
		ideas.Config{Limit: 5},
	)

	result, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("Aggregate err=%v", err)
	}
	outcome, _ := result.Get("quiet")
	if !outcome.OK() {
		t.Fatalf("empty result must stay a success: %+v", outcome.Failure)
	}
	if outcome.Items == nil {
		t.Error("successful outcome must carry a non-nil item slice")
	}
}

func TestNewService_missingClient(t *testing.T) {
	_, err := ideas.NewService(
		[]ideas.SourceID{"recipes", "ghost"},
		map[ideas.SourceID]ideas.Client{"recipes": fixedItems()},
		ideas.Config{Limit: 5},
	)
	if !errors.Is(err, ideas.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}
