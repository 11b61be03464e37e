package fighters

import (
	"context"
	"errors"
	"testing"

	domainfighters "github.com/preston-bernstein/fightcard-service/internal/domain/fighters"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

type pageCall struct{ offset, limit int }

type stubClient struct {
	pages   map[int][]domainfighters.Fighter // keyed by offset
	fighter domainfighters.Fighter
	search  domainfighters.SearchResult
	history []fights.HistoryEntry
	err     error

	calls       []pageCall
	lastSearchQ string
}

func (s *stubClient) Fighters(ctx context.Context, offset, limit int) ([]domainfighters.Fighter, error) {
	s.calls = append(s.calls, pageCall{offset, limit})
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[offset], nil
}

func (s *stubClient) Fighter(ctx context.Context, id int) (domainfighters.Fighter, error) {
	return s.fighter, s.err
}

func (s *stubClient) SearchFighters(ctx context.Context, q string) (domainfighters.SearchResult, error) {
	s.lastSearchQ = q
	return s.search, s.err
}

func (s *stubClient) FighterFights(ctx context.Context, fighterID int) ([]fights.HistoryEntry, error) {
	return s.history, s.err
}

func fighter(id int, name string) domainfighters.Fighter {
	return domainfighters.Fighter{ID: id, Name: name}
}

func TestRosterMergesPagesByID(t *testing.T) {
	client := &stubClient{pages: map[int][]domainfighters.Fighter{
		0: {fighter(1, "Alex Pereira"), fighter(2, "Jamahal Hill")},
		2: {fighter(2, "Jamahal Hill"), fighter(3, "Jiri Prochazka")},
		4: {fighter(4, "Magomed Ankalaev")},
	}}
	svc := NewService(client, 2)

	got, err := svc.Roster(context.Background(), RosterQuery{Pages: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantIDs := []int{1, 2, 3, 4}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d fighters, got %+v", len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
	// third page is short, so loading stops there
	if len(client.calls) != 3 {
		t.Fatalf("expected 3 page calls, got %+v", client.calls)
	}
	if client.calls[2] != (pageCall{4, 2}) {
		t.Fatalf("unexpected paging %+v", client.calls)
	}
}

func TestRosterDefaultsToOnePageAndHonoursPageSize(t *testing.T) {
	client := &stubClient{pages: map[int][]domainfighters.Fighter{
		0: {fighter(1, "A"), fighter(2, "B"), fighter(3, "C")},
	}}
	svc := NewService(client, 0)

	if _, err := svc.Roster(context.Background(), RosterQuery{PageSize: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.calls) != 1 || client.calls[0] != (pageCall{0, 3}) {
		t.Fatalf("expected a single page of 3, got %+v", client.calls)
	}
	if svc.pageSize != defaultPageSize {
		t.Fatalf("expected default page size, got %d", svc.pageSize)
	}
}

func TestRosterFiltersLocally(t *testing.T) {
	poatan := fighter(1, "Alex Pereira")
	poatan.Nickname = optional.Some("Poatan")
	hill := fighter(2, "Jamahal Hill")
	hill.Country = optional.Some("United States")
	client := &stubClient{pages: map[int][]domainfighters.Fighter{0: {poatan, hill}}}
	svc := NewService(client, 10)

	got, err := svc.Roster(context.Background(), RosterQuery{Filter: "  POATAN "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only Pereira, got %+v", got)
	}

	got, _ = svc.Roster(context.Background(), RosterQuery{Filter: "united"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only Hill, got %+v", got)
	}
}

func TestRosterEmptyIsNonNil(t *testing.T) {
	svc := NewService(&stubClient{}, 10)
	got, err := svc.Roster(context.Background(), RosterQuery{})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil roster, got %v err %v", got, err)
	}
}

func TestRosterPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&stubClient{err: boom}, 10)
	if _, err := svc.Roster(context.Background(), RosterQuery{Pages: 2}); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, 10)
	if _, err := svc.Search(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}

	res, err := svc.Search(context.Background(), " jones ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastSearchQ != "jones" {
		t.Fatalf("expected trimmed query, got %q", client.lastSearchQ)
	}
	if res.Fighters == nil {
		t.Fatalf("expected non-nil fighters")
	}
}

func TestProfileDerivesDisplayFields(t *testing.T) {
	f := fighter(5, "Jon Jones")
	f.Record = optional.Some("27-1-0")
	svc := NewService(&stubClient{fighter: f}, 10)

	p, err := svc.Profile(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstName != "Jon" || p.LastName != "Jones" {
		t.Fatalf("unexpected name split %q %q", p.FirstName, p.LastName)
	}
	rec, ok := p.Tally.Get()
	if !ok || rec.Wins != 27 || rec.Losses != 1 {
		t.Fatalf("unexpected tally %+v ok=%v", rec, ok)
	}
}

func TestHistory(t *testing.T) {
	svc := NewService(&stubClient{}, 10)
	got, err := svc.History(context.Background(), 1)
	if err != nil || got == nil {
		t.Fatalf("expected empty non-nil history, got %v err %v", got, err)
	}

	boom := errors.New("boom")
	svc = NewService(&stubClient{err: boom}, 10)
	if _, err := svc.History(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
	if _, err := svc.Profile(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected profile error, got %v", err)
	}
}
