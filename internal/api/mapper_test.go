package api

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestUpcomingEventsEncodesPagingAndMaps(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/events/upcoming" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		if got := req.URL.RawQuery; got != "limit=10&offset=20" {
			t.Fatalf("unexpected query %s", got)
		}
		return jsonResponse(http.StatusOK, `[{
			"id": 1,
			"title": "UFC 300",
			"date": "2024-04-13T22:00:00",
			"location": "Las Vegas, Nevada, USA",
			"location_flag": "",
			"organizer": "UFC"
		}]`), nil
	})

	got, err := client.UpcomingEvents(context.Background(), 20, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	ev := got[0]
	if ev.Title != "UFC 300" || !ev.Date.Equal(time.Date(2024, 4, 13, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.LocationFlag.IsPresent() {
		t.Fatalf("expected blank flag to be absent")
	}
}

func TestUpcomingEventsPastTheEndIsEmpty(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"detail":"No upcoming events found"}`), nil
	})

	got, err := client.UpcomingEvents(context.Background(), 100, 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty page, got %v, %v", got, err)
	}
}

func TestMapFightOutcomeOnlyWhenResolved(t *testing.T) {
	upcoming := mapFight(fightWire{Fighter1Name: "A", Fighter2Name: "B", Winner: strPtr(""), Method: strPtr(" ")})
	if upcoming.Resolved() {
		t.Fatalf("expected blank winner/method to leave fight unresolved")
	}

	round := 3
	done := mapFight(fightWire{ID: intPtr(5), Winner: strPtr("A"), Method: strPtr("Decision"), Round: &round, Time: strPtr("5:00")})
	outcome, ok := done.Outcome.Get()
	if !ok || outcome.Winner != "A" {
		t.Fatalf("expected outcome, got %+v", done.Outcome)
	}
	if r, _ := outcome.Round.Get(); r != 3 {
		t.Fatalf("expected round 3, got %+v", outcome.Round)
	}
	if ref := done.Ref(); ref.String() != "5" {
		t.Fatalf("expected id ref, got %s", ref)
	}
}

func TestMapFighterKeepsAbsentFieldsAbsent(t *testing.T) {
	f := mapFighter(fighterWire{ID: 1, Name: " Israel Adesanya ", Nickname: strPtr("The Last Stylebender"), Record: nil, Country: strPtr("")})
	if f.Name != "Israel Adesanya" {
		t.Fatalf("expected trimmed name, got %q", f.Name)
	}
	if nick, ok := f.Nickname.Get(); !ok || nick != "The Last Stylebender" {
		t.Fatalf("expected nickname, got %+v", f.Nickname)
	}
	if f.Record.IsPresent() || f.Country.IsPresent() {
		t.Fatalf("expected nil and blank fields to be absent")
	}
}

func TestSearchFightersMapsTotal(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("q") != "jones" {
			t.Fatalf("expected q=jones, got %s", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"fighters":[{"id":1,"name":"Jon Jones"}],"total":1}`), nil
	})

	got, err := client.SearchFighters(context.Background(), " jones ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 1 || len(got.Fighters) != 1 || got.Fighters[0].Name != "Jon Jones" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestFighterFightsMapsHistory(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/fighters/3/fights" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `[{"fight_id":9,"event_title":"UFC 295","event_date":"2023-11-11","opponent_name":"Jiri Prochazka","result":"W","method":"KO/TKO","round":2,"time":"4:08"}]`), nil
	})

	got, err := client.FighterFights(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Opponent != "Jiri Prochazka" {
		t.Fatalf("unexpected history %+v", got)
	}
	if d, ok := got[0].EventDate.Get(); !ok || d.Year() != 2023 {
		t.Fatalf("expected parsed event date, got %+v", got[0].EventDate)
	}
}

func TestEventSummaryFallsBackToRequestedURL(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("event_url") != "http://ufcstats.com/event/x" {
			t.Fatalf("unexpected query %s", req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"event_title":"UFC 301","event_date":"2024-05-04"}`), nil
	})

	got, err := client.EventSummary(context.Background(), "http://ufcstats.com/event/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.URL != "http://ufcstats.com/event/x" || got.Title != "UFC 301" || got.Date.IsZero() {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
