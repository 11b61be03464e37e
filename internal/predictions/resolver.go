package predictions

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/metrics"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

const defaultLookupLimit = 4

// EventLookup resolves an event key to its title and date.
type EventLookup interface {
	EventSummary(ctx context.Context, key string) (events.Summary, error)
}

// Resolver fetches metadata for every distinct event key concurrently. A nil
// Resolver performs no lookups.
type Resolver struct {
	lookup  EventLookup
	limit   int
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewResolver builds a resolver. A nil lookup resolves only what the
// predictions already carry; limit <= 0 uses a small default.
func NewResolver(lookup EventLookup, limit int, logger *slog.Logger, recorder *metrics.Recorder) *Resolver {
	if limit <= 0 {
		limit = defaultLookupLimit
	}
	return &Resolver{lookup: lookup, limit: limit, logger: logger, metrics: recorder}
}

// Resolve returns metadata for every event key in list. Keys whose
// predictions already carry a date are not looked up. A failed lookup leaves
// that key unresolved and never aborts the others.
func (r *Resolver) Resolve(ctx context.Context, list []predictions.Prediction) Meta {
	meta := make(Meta)
	var pending []EventMeta
	for _, p := range list {
		if _, seen := meta[p.EventKey]; seen {
			continue
		}
		em := EventMeta{Key: p.EventKey, Title: strings.TrimSpace(p.EventTitle), Date: p.EventDate}
		em.Resolved = em.Date.IsPresent()
		meta[p.EventKey] = em
		if !em.Resolved && p.EventKey != "" && r != nil && r.lookup != nil {
			pending = append(pending, em)
		}
	}
	if len(pending) == 0 {
		return meta
	}

	results := make([]EventMeta, len(pending))
	var failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, em := range pending {
		g.Go(func() error {
			summary, err := r.lookup.EventSummary(gctx, em.Key)
			if err != nil {
				failed.Add(1)
				logging.Warn(logging.FromContext(ctx, r.logger), "event lookup failed",
					logging.FieldEventKey, em.Key,
					logging.FieldError, err,
				)
				results[i] = em
				return nil // degrade this group only
			}
			results[i] = resolved(em, summary)
			return nil
		})
	}
	_ = g.Wait()

	for _, em := range results {
		meta[em.Key] = em
	}
	r.metrics.RecordEventLookups(len(pending), int(failed.Load()))
	return meta
}

func resolved(em EventMeta, summary events.Summary) EventMeta {
	if title := strings.TrimSpace(summary.Title); title != "" {
		em.Title = title
	}
	if !summary.Date.IsZero() {
		em.Date = optional.Some(summary.Date)
		em.Resolved = true
	}
	return em
}
