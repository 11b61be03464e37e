package predictions

import (
	"context"

	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
)

// Query selects what the predictions view shows.
type Query struct {
	Search    string
	Status    predictions.Status
	Direction Direction
}

// View is the derived predictions screen.
type View struct {
	Predictions []predictions.Prediction `json:"predictions"`
	Groups      []Group                  `json:"groups"`
	Summary     Summary                  `json:"summary"`
}

// Pipeline resolves event metadata and derives the view for a query.
type Pipeline struct {
	resolver *Resolver
}

// NewPipeline builds a pipeline. A nil resolver uses only the metadata the
// predictions already carry.
func NewPipeline(resolver *Resolver) *Pipeline {
	return &Pipeline{resolver: resolver}
}

// Build runs resolve, search, status filter, sort, group and summarize.
// Resolved titles are copied onto the predictions so search sees them.
func (p *Pipeline) Build(ctx context.Context, list []predictions.Prediction, q Query) View {
	meta := p.resolver.Resolve(ctx, list)

	enriched := withTitles(list, meta)
	filtered := FilterStatus(Search(enriched, q.Search), q.Status)

	dir := q.Direction
	if dir == "" {
		dir = Descending
	}
	sorted := Sort(filtered, meta, dir)

	return View{
		Predictions: sorted,
		Groups:      GroupByEvent(sorted, meta),
		Summary:     Summarize(sorted),
	}
}

func withTitles(list []predictions.Prediction, meta Meta) []predictions.Prediction {
	out := clone(list)
	for i := range out {
		if out[i].EventTitle == "" {
			out[i].EventTitle = meta.title(out[i].EventKey)
		}
		if em, ok := meta[out[i].EventKey]; ok && !out[i].EventDate.IsPresent() {
			out[i].EventDate = em.Date
		}
	}
	return out
}
