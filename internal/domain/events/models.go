package events

import (
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// Filter selects which slice of the event calendar to list.
type Filter string

const (
	FilterUpcoming Filter = "upcoming"
	FilterPast     Filter = "past"
)

// ParseFilter maps a query value to a Filter, defaulting to upcoming.
func ParseFilter(raw string) (Filter, bool) {
	switch Filter(raw) {
	case "", FilterUpcoming:
		return FilterUpcoming, true
	case FilterPast:
		return FilterPast, true
	default:
		return "", false
	}
}

// Event is a scheduled card.
type Event struct {
	ID           int                    `json:"id"`
	Title        string                 `json:"title"`
	Date         time.Time              `json:"date"`
	Venue        string                 `json:"venue"`
	Location     string                 `json:"location"`
	LocationFlag optional.Value[string] `json:"locationFlag"`
}

// Summary is the lightweight title/date lookup keyed by event URL.
type Summary struct {
	URL   string    `json:"url"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// MainFighter is one side of a headline bout.
type MainFighter struct {
	ID       int                    `json:"id"`
	Name     string                 `json:"name"`
	Nickname optional.Value[string] `json:"nickname"`
	ImageURL optional.Value[string] `json:"imageUrl"`
	Ranking  optional.Value[string] `json:"ranking"`
}

// MainEvent is the headline fight of an event.
type MainEvent struct {
	EventID    int         `json:"eventId"`
	EventTitle string      `json:"eventTitle"`
	EventDate  time.Time   `json:"eventDate"`
	Fighter1   MainFighter `json:"fighter1"`
	Fighter2   MainFighter `json:"fighter2"`
}
