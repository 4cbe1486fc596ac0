// Package ideas aggregates recipe ideas from several external content
// sources in parallel. One slow or broken source never sinks the whole
// request: each source gets its own timeout and its own outcome slot.
package ideas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"recipe-catalog/internal/observability/metrics"
)

// Client fetches at most limit items from one external source.
// Implementations must honor context cancellation and classify their
// failures by wrapping ErrSourceTimeout, ErrSourceUnavailable or
// ErrSourceMalformedResponse.
type Client interface {
	FetchTop(ctx context.Context, limit int) ([]Item, error)
}

// Config controls one aggregation fan-out.
type Config struct {
	Limit            int           // max items requested per source
	PerSourceTimeout time.Duration // deadline for a single source
	OverallDeadline  time.Duration // deadline for the whole fan-out
}

const (
	defaultPerSourceTimeout = 5 * time.Second
	defaultOverallDeadline  = 8 * time.Second
)

// Service fans requests out to all configured sources. The source order
// given at construction is the order outcomes are reported in.
type Service struct {
	order   []SourceID
	clients map[SourceID]Client
	cfg     Config
}

// NewService creates an aggregation service over the given clients.
// Order determines reporting order and must name a client for every entry.
func NewService(order []SourceID, clients map[SourceID]Client, cfg Config) (*Service, error) {
	for _, id := range order {
		if _, ok := clients[id]; !ok {
			return nil, fmt.Errorf("no client configured for source %q: %w", id, ErrInvalidArgument)
		}
	}
	if cfg.PerSourceTimeout <= 0 {
		cfg.PerSourceTimeout = defaultPerSourceTimeout
	}
	if cfg.OverallDeadline <= 0 {
		cfg.OverallDeadline = defaultOverallDeadline
	}
	return &Service{order: order, clients: clients, cfg: cfg}, nil
}

// Aggregate queries every configured source concurrently and returns one
// outcome per source, in configuration order. It fails fast with
// ErrInvalidArgument when no sources are configured or the limit is not
// positive; source failures never fail the call, they are recorded in the
// matching outcome slot instead.
func (s *Service) Aggregate(ctx context.Context) (*Result, error) {
	if len(s.order) == 0 {
		return nil, fmt.Errorf("no sources configured: %w", ErrInvalidArgument)
	}
	if s.cfg.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d: %w", s.cfg.Limit, ErrInvalidArgument)
	}

	logger := slog.Default()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OverallDeadline)
	defer cancel()

	// Each goroutine owns exactly one slot, so no locking is needed and a
	// finished fan-out always has len(order) outcomes.
	outcomes := make([]Outcome, len(s.order))

	var eg errgroup.Group
	for i, id := range s.order {
		i, id := i, id
		client := s.clients[id]

		eg.Go(func() error {
			srcCtx, srcCancel := context.WithTimeout(ctx, s.cfg.PerSourceTimeout)
			defer srcCancel()

			srcStart := time.Now()
			items, err := client.FetchTop(srcCtx, s.cfg.Limit)
			srcDuration := time.Since(srcStart)

			if err != nil {
				failure := classify(err)
				outcomes[i] = Outcome{SourceID: id, Failure: &failure}
				metrics.RecordSourceOutcome(string(id), string(failure.Kind), srcDuration)
				logger.Warn("idea source failed",
					slog.String("source", string(id)),
					slog.String("kind", string(failure.Kind)),
					slog.Duration("duration", srcDuration),
					slog.Any("error", err))
				return nil
			}

			if items == nil {
				items = []Item{}
			}
			outcomes[i] = Outcome{SourceID: id, Items: items}
			metrics.RecordSourceOutcome(string(id), "success", srcDuration)
			return nil
		})
	}

	// Worker funcs always return nil; Wait only synchronizes completion.
	_ = eg.Wait()

	duration := time.Since(start)
	metrics.RecordAggregation(duration)
	logger.Info("idea aggregation completed",
		slog.Int("sources", len(s.order)),
		slog.Duration("duration", duration))

	return &Result{outcomes: outcomes}, nil
}

// classify maps a client error onto the failure taxonomy. Deadline errors
// count as timeouts even when the client forgot to wrap them.
func classify(err error) Failure {
	var kind FailureKind
	switch {
	case errors.Is(err, ErrSourceTimeout), errors.Is(err, context.DeadlineExceeded):
		kind = FailureTimeout
	case errors.Is(err, ErrSourceMalformedResponse):
		kind = FailureMalformed
	default:
		kind = FailureUnavailable
	}
	return Failure{Kind: kind, Detail: err.Error()}
}
