package fights

import (
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// Ref identifies a fight either by numeric id or, for API revisions that do
// not expose one, by a composite key built from the participants' names.
type Ref struct {
	ID  optional.Value[int] `json:"id"`
	Key string              `json:"key,omitempty"`
}

// RefByID builds a Ref for a numeric fight id.
func RefByID(id int) Ref {
	return Ref{ID: optional.Some(id)}
}

// RefByNames builds a composite Ref from both fighters' names.
func RefByNames(fighter1, fighter2 string) Ref {
	return Ref{Key: CompositeKey(fighter1, fighter2)}
}

// CompositeKey joins two names into a stable "a vs b" key.
func CompositeKey(fighter1, fighter2 string) string {
	return strings.TrimSpace(fighter1) + " vs " + strings.TrimSpace(fighter2)
}

// String renders the ref for logs and map keys.
func (r Ref) String() string {
	if id, ok := r.ID.Get(); ok {
		return strconv.Itoa(id)
	}
	return r.Key
}

// Corner is one side of a bout.
type Corner struct {
	FighterID int                    `json:"fighterId"`
	Name      string                 `json:"name"`
	ImageURL  optional.Value[string] `json:"imageUrl"`
	Ranking   optional.Value[string] `json:"ranking"`
	Flag      optional.Value[string] `json:"flag"`
}

// Outcome describes how a concluded fight ended.
type Outcome struct {
	WinnerID optional.Value[int]    `json:"winnerId"`
	Winner   string                 `json:"winner"`
	Method   string                 `json:"method"`
	Round    optional.Value[int]    `json:"round"`
	Time     optional.Value[string] `json:"time"`
}

// Fight is a single bout. Outcome is absent until the fight is resolved.
type Fight struct {
	ID          optional.Value[int]     `json:"id"`
	EventID     optional.Value[int]     `json:"eventId"`
	MatchNumber optional.Value[int]     `json:"matchNumber"`
	Fighter1    Corner                  `json:"fighter1"`
	Fighter2    Corner                  `json:"fighter2"`
	WeightClass string                  `json:"weightClass"`
	Outcome     optional.Value[Outcome] `json:"outcome"`
}

// Resolved reports whether an outcome is attached.
func (f Fight) Resolved() bool {
	return f.Outcome.IsPresent()
}

// Ref returns the fight's identifier, falling back to the names key.
func (f Fight) Ref() Ref {
	if id, ok := f.ID.Get(); ok {
		return RefByID(id)
	}
	return RefByNames(f.Fighter1.Name, f.Fighter2.Name)
}

// HistoryEntry is one past bout in a fighter's record.
type HistoryEntry struct {
	FightID    optional.Value[int]       `json:"fightId"`
	EventID    optional.Value[int]       `json:"eventId"`
	EventTitle string                    `json:"eventTitle"`
	EventDate  optional.Value[time.Time] `json:"eventDate"`
	OpponentID optional.Value[int]       `json:"opponentId"`
	Opponent   string                    `json:"opponent"`
	Result     string                    `json:"result"`
	Method     optional.Value[string]    `json:"method"`
	Round      optional.Value[int]       `json:"round"`
	Time       optional.Value[string]    `json:"time"`
}
