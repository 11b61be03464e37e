package events

import (
	"context"
	"fmt"

	domainevents "github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
)

// Client defines the upstream calls the events screens need.
type Client interface {
	UpcomingEvents(ctx context.Context, offset, limit int) ([]domainevents.Event, error)
	PastEvents(ctx context.Context, offset, limit int) ([]domainevents.Event, error)
	MainEvents(ctx context.Context, limit int) ([]domainevents.MainEvent, error)
	EventFights(ctx context.Context, eventID int) ([]fights.Fight, error)
}

// Service coordinates event operations using a Client.
type Service struct {
	client Client
}

// NewService constructs a Service with the provided Client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// List returns one page of upcoming or past events.
func (s *Service) List(ctx context.Context, filter domainevents.Filter, offset, limit int) ([]domainevents.Event, error) {
	var (
		list []domainevents.Event
		err  error
	)
	switch filter {
	case domainevents.FilterUpcoming:
		list, err = s.client.UpcomingEvents(ctx, offset, limit)
	case domainevents.FilterPast:
		list, err = s.client.PastEvents(ctx, offset, limit)
	default:
		return nil, fmt.Errorf("unknown event filter %q", filter)
	}
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// Main returns the headline bout of the next cards.
func (s *Service) Main(ctx context.Context, limit int) ([]domainevents.MainEvent, error) {
	list, err := s.client.MainEvents(ctx, limit)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// Fights returns the card for an event in bout order.
func (s *Service) Fights(ctx context.Context, eventID int) ([]fights.Fight, error) {
	list, err := s.client.EventFights(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
