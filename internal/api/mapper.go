package api

import (
	"strings"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/domain/events"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fighters"
	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
	"github.com/preston-bernstein/fightcard-service/internal/timeutil"
)

func mapEvent(w eventWire) events.Event {
	return events.Event{
		ID:           w.ID,
		Title:        strings.TrimSpace(w.Title),
		Date:         parseDate(w.Date),
		Venue:        optional.StringPtr(w.Venue).OrElse(""),
		Location:     strings.TrimSpace(w.Location),
		LocationFlag: optional.StringPtr(w.LocationFlag),
	}
}

func mapEvents(ws []eventWire) []events.Event {
	out := make([]events.Event, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapEvent(w))
	}
	return out
}

func mapSummary(w eventSummaryWire) events.Summary {
	return events.Summary{
		URL:   w.EventURL,
		Title: strings.TrimSpace(w.EventTitle),
		Date:  parseDate(w.EventDate),
	}
}

func mapMainEvents(ws []mainEventWire) []events.MainEvent {
	out := make([]events.MainEvent, 0, len(ws))
	for _, w := range ws {
		out = append(out, events.MainEvent{
			EventID:    w.EventID,
			EventTitle: strings.TrimSpace(w.EventTitle),
			EventDate:  parseDate(w.EventDate),
			Fighter1: events.MainFighter{
				ID:       w.Fighter1ID,
				Name:     w.Fighter1Name,
				Nickname: optional.StringPtr(w.Fighter1Nickname),
				ImageURL: optional.StringPtr(w.Fighter1Image),
				Ranking:  optional.StringPtr(w.Fighter1Ranking),
			},
			Fighter2: events.MainFighter{
				ID:       w.Fighter2ID,
				Name:     w.Fighter2Name,
				Nickname: optional.StringPtr(w.Fighter2Nickname),
				ImageURL: optional.StringPtr(w.Fighter2Image),
				Ranking:  optional.StringPtr(w.Fighter2Ranking),
			},
		})
	}
	return out
}

func mapFighter(w fighterWire) fighters.Fighter {
	return fighters.Fighter{
		ID:          w.ID,
		Name:        strings.TrimSpace(w.Name),
		Nickname:    optional.StringPtr(w.Nickname),
		ImageURL:    optional.StringPtr(w.ImageURL),
		Record:      optional.StringPtr(w.Record),
		Ranking:     optional.StringPtr(w.Ranking),
		Country:     optional.StringPtr(w.Country),
		City:        optional.StringPtr(w.City),
		DOB:         optional.StringPtr(w.DOB),
		Height:      optional.StringPtr(w.Height),
		WeightClass: optional.StringPtr(w.WeightClass),
		Association: optional.StringPtr(w.Association),
	}
}

func mapFighters(ws []fighterWire) []fighters.Fighter {
	out := make([]fighters.Fighter, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapFighter(w))
	}
	return out
}

func mapFight(w fightWire) fights.Fight {
	f := fights.Fight{
		ID:          optional.FromPtr(w.ID),
		EventID:     optional.FromPtr(w.EventID),
		MatchNumber: optional.FromPtr(w.MatchNumber),
		Fighter1: fights.Corner{
			FighterID: w.Fighter1ID,
			Name:      w.Fighter1Name,
			ImageURL:  optional.StringPtr(w.Fighter1Image),
			Ranking:   optional.StringPtr(w.Fighter1Ranking),
			Flag:      optional.StringPtr(w.Fighter1Flag),
		},
		Fighter2: fights.Corner{
			FighterID: w.Fighter2ID,
			Name:      w.Fighter2Name,
			ImageURL:  optional.StringPtr(w.Fighter2Image),
			Ranking:   optional.StringPtr(w.Fighter2Ranking),
			Flag:      optional.StringPtr(w.Fighter2Flag),
		},
		WeightClass: strings.TrimSpace(w.WeightClass),
	}

	// Upcoming bouts come back with blank winner/method columns.
	winner := optional.StringPtr(w.Winner)
	method := optional.StringPtr(w.Method)
	if winner.IsPresent() || method.IsPresent() {
		f.Outcome = optional.Some(fights.Outcome{
			WinnerID: optional.FromPtr(w.WinnerID),
			Winner:   winner.OrElse(""),
			Method:   method.OrElse(""),
			Round:    positive(w.Round),
			Time:     optional.StringPtr(w.Time),
		})
	}
	return f
}

func mapFights(ws []fightWire) []fights.Fight {
	out := make([]fights.Fight, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapFight(w))
	}
	return out
}

func mapHistory(ws []fightHistoryWire) []fights.HistoryEntry {
	out := make([]fights.HistoryEntry, 0, len(ws))
	for _, w := range ws {
		entry := fights.HistoryEntry{
			FightID:    optional.FromPtr(w.FightID),
			EventID:    optional.FromPtr(w.EventID),
			EventTitle: strings.TrimSpace(w.EventTitle),
			OpponentID: optional.FromPtr(w.OpponentID),
			Opponent:   w.OpponentName,
			Result:     strings.TrimSpace(w.Result),
			Method:     optional.StringPtr(w.Method),
			Round:      positive(w.Round),
			Time:       optional.StringPtr(w.Time),
		}
		if w.EventDate != nil {
			if t, err := timeutil.ParseEventDate(*w.EventDate); err == nil {
				entry.EventDate = optional.Some(t)
			}
		}
		out = append(out, entry)
	}
	return out
}

// parseDate returns the zero time for dates the API left blank or malformed.
func parseDate(raw string) time.Time {
	t, err := timeutil.ParseEventDate(raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func positive(p *int) optional.Value[int] {
	if p == nil || *p <= 0 {
		return optional.None[int]()
	}
	return optional.Some(*p)
}
