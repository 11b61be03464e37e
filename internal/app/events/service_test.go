package events

import (
	"context"
	"errors"
	"testing"

	domainevents "github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

type stubClient struct {
	upcoming []domainevents.Event
	past     []domainevents.Event
	main     []domainevents.MainEvent
	card     []fights.Fight
	err      error

	lastOffset int
	lastLimit  int
	lastEvent  int
}

func (s *stubClient) UpcomingEvents(ctx context.Context, offset, limit int) ([]domainevents.Event, error) {
	s.lastOffset, s.lastLimit = offset, limit
	return s.upcoming, s.err
}

func (s *stubClient) PastEvents(ctx context.Context, offset, limit int) ([]domainevents.Event, error) {
	s.lastOffset, s.lastLimit = offset, limit
	return s.past, s.err
}

func (s *stubClient) MainEvents(ctx context.Context, limit int) ([]domainevents.MainEvent, error) {
	s.lastLimit = limit
	return s.main, s.err
}

func (s *stubClient) EventFights(ctx context.Context, eventID int) ([]fights.Fight, error) {
	s.lastEvent = eventID
	return s.card, s.err
}

func TestServiceListSelectsByFilter(t *testing.T) {
	client := &stubClient{
		upcoming: []domainevents.Event{{ID: 1, Title: "UFC 300"}},
		past:     []domainevents.Event{{ID: 2, Title: "UFC 299"}},
	}
	svc := NewService(client)

	got, err := svc.List(context.Background(), domainevents.FilterUpcoming, 10, 5)
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected upcoming result %+v err %v", got, err)
	}
	if client.lastOffset != 10 || client.lastLimit != 5 {
		t.Fatalf("expected paging passthrough, got offset=%d limit=%d", client.lastOffset, client.lastLimit)
	}

	got, err = svc.List(context.Background(), domainevents.FilterPast, 0, 0)
	if err != nil || len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected past result %+v err %v", got, err)
	}
}

func TestServiceListRejectsUnknownFilter(t *testing.T) {
	svc := NewService(&stubClient{})
	if _, err := svc.List(context.Background(), domainevents.Filter("later"), 0, 0); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestServiceReturnsEmptySlicesNotNil(t *testing.T) {
	svc := NewService(&stubClient{})
	ctx := context.Background()

	list, err := svc.List(ctx, domainevents.FilterUpcoming, 0, 0)
	if err != nil || list == nil {
		t.Fatalf("expected empty non-nil list, got %v err %v", list, err)
	}
	main, err := svc.Main(ctx, 3)
	if err != nil || main == nil {
		t.Fatalf("expected empty non-nil main events, got %v err %v", main, err)
	}
	card, err := svc.Fights(ctx, 7)
	if err != nil || card == nil {
		t.Fatalf("expected empty non-nil card, got %v err %v", card, err)
	}
}

func TestServicePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&stubClient{err: boom})
	ctx := context.Background()

	if _, err := svc.List(ctx, domainevents.FilterPast, 0, 0); !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}
	if _, err := svc.Main(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("expected main error, got %v", err)
	}
	if _, err := svc.Fights(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("expected fights error, got %v", err)
	}
}

func TestServiceFightsPassesEventID(t *testing.T) {
	client := &stubClient{card: []fights.Fight{{ID: optional.Some(11)}}}
	svc := NewService(client)

	card, err := svc.Fights(context.Background(), 42)
	if err != nil || len(card) != 1 {
		t.Fatalf("unexpected card %+v err %v", card, err)
	}
	if client.lastEvent != 42 {
		t.Fatalf("expected event id 42, got %d", client.lastEvent)
	}
}
