package predictions

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func graded(correct bool) *predictions.Result {
	return &predictions.Result{FighterCorrect: correct}
}

type predOpt func(*predictions.Prediction)

func withDate(s string) predOpt {
	return func(p *predictions.Prediction) { p.EventDate = optional.Some(day(s)) }
}

func withResult(r *predictions.Result) predOpt {
	return func(p *predictions.Prediction) { p.Result = r }
}

func withIndex(i int) predOpt {
	return func(p *predictions.Prediction) { p.FightIndex = optional.Some(i) }
}

func withMethod(m predictions.Method) predOpt {
	return func(p *predictions.Prediction) { p.Method = m }
}

func pred(id int, event, winner string, opts ...predOpt) predictions.Prediction {
	p := predictions.Prediction{
		UserID:     1,
		Fight:      fights.RefByID(id),
		EventKey:   event,
		EventTitle: event,
		Fighter1:   winner,
		Fighter2:   "Opponent " + winner,
		Winner:     winner,
		Method:     predictions.MethodDecision,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// scenario is the two-event list used throughout: E1 on 2024-01-01 holds a
// correct and a wrong pick, E2 on 2023-12-01 holds a pending one.
func scenario() []predictions.Prediction {
	return []predictions.Prediction{
		pred(1, "E1", "A", withDate("2024-01-01"), withResult(graded(true))),
		pred(2, "E1", "B", withDate("2024-01-01"), withResult(graded(false))),
		pred(3, "E2", "C", withDate("2023-12-01")),
	}
}

func ids(list []predictions.Prediction) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Fight.String())
	}
	return out
}

func randomList(r *rand.Rand, n int, distinctDates bool) []predictions.Prediction {
	names := []string{"Jon Jones", "Alex Pereira", "Zhang Weili", "Islam Makhachev", "Amanda Nunes", "Sean O'Malley"}
	methods := predictions.Methods
	out := make([]predictions.Prediction, 0, n)
	base := day("2022-01-01")
	offsets := r.Perm(n)
	for i := 0; i < n; i++ {
		event := fmt.Sprintf("UFC %d", 280+r.Intn(5))
		date := base.AddDate(0, 0, r.Intn(5)*7)
		if distinctDates {
			event = fmt.Sprintf("UFC %d", 280+i)
			date = base.AddDate(0, 0, offsets[i]*7)
		}
		p := pred(i+1, event, names[r.Intn(len(names))], withMethod(methods[r.Intn(len(methods))]))
		p.EventDate = optional.Some(date)
		switch r.Intn(3) {
		case 0:
			p.Result = graded(true)
		case 1:
			p.Result = graded(false)
		}
		out = append(out, p)
	}
	return out
}

type fakeLookup struct {
	mu       sync.Mutex
	calls    map[string]int
	summary  map[string]events.Summary
	failKeys map[string]bool
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		calls:    make(map[string]int),
		summary:  make(map[string]events.Summary),
		failKeys: make(map[string]bool),
	}
}

func (f *fakeLookup) EventSummary(_ context.Context, key string) (events.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	if f.failKeys[key] {
		return events.Summary{}, errors.New("lookup failed")
	}
	s, ok := f.summary[key]
	if !ok {
		return events.Summary{}, errors.New("not found")
	}
	return s, nil
}
