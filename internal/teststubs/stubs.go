package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
)

// StubUpstream is a test double for poller.Upstream.
type StubUpstream struct {
	Cards  []events.MainEvent
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	mu  sync.Mutex
	err error
}

// MainEvents returns configured cards and error while tracking calls.
func (s *StubUpstream) MainEvents(ctx context.Context, limit int) ([]events.MainEvent, error) {
	_ = ctx
	_ = limit
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.Cards, s.Err
}

// Fail makes subsequent calls return err; nil restores the configured Err.
func (s *StubUpstream) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// StubEventLookup is a test double for predictions.EventLookup.
type StubEventLookup struct {
	Summaries map[string]events.Summary
	Err       error

	mu    sync.Mutex
	calls map[string]int
}

// EventSummary returns the configured summary for key and counts the call.
func (s *StubEventLookup) EventSummary(ctx context.Context, key string) (events.Summary, error) {
	_ = ctx
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[key]++
	s.mu.Unlock()

	if s.Err != nil {
		return events.Summary{}, s.Err
	}
	summary, ok := s.Summaries[key]
	if !ok {
		return events.Summary{}, errors.New("event not found")
	}
	return summary, nil
}

// Calls reports how many lookups were made for key.
func (s *StubEventLookup) Calls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

// StubSessionStore is a session.Store whose operations can be forced to fail.
type StubSessionStore struct {
	Values   map[string]string
	GetErr   error
	SaveErr  error
	ClearErr error
}

// Get returns the stored value for key.
func (s *StubSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	_ = ctx
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.Values[key]
	return v, ok, nil
}

// Save merges values into the store.
func (s *StubSessionStore) Save(ctx context.Context, values map[string]string) error {
	_ = ctx
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Values == nil {
		s.Values = make(map[string]string, len(values))
	}
	for k, v := range values {
		s.Values[k] = v
	}
	return nil
}

// Clear drops every stored value.
func (s *StubSessionStore) Clear(ctx context.Context) error {
	_ = ctx
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Values = nil
	return nil
}
