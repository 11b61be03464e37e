package fighters

import "github.com/preston-bernstein/fightcard-service/internal/optional"

// Fighter is a competitor profile. Name is always present; everything else
// may be missing upstream.
type Fighter struct {
	ID          int                    `json:"id"`
	Name        string                 `json:"name"`
	Nickname    optional.Value[string] `json:"nickname"`
	ImageURL    optional.Value[string] `json:"imageUrl"`
	Record      optional.Value[string] `json:"record"`
	Ranking     optional.Value[string] `json:"ranking"`
	Country     optional.Value[string] `json:"country"`
	City        optional.Value[string] `json:"city"`
	DOB         optional.Value[string] `json:"dob"`
	Height      optional.Value[string] `json:"height"`
	WeightClass optional.Value[string] `json:"weightClass"`
	Association optional.Value[string] `json:"association"`
}

// SearchResult is the payload of a fighter name search.
type SearchResult struct {
	Fighters []Fighter `json:"fighters"`
	Total    int       `json:"total"`
}

// Profile decorates a fighter with values derived for display.
type Profile struct {
	Fighter
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Tally     optional.Value[Record] `json:"tally"`
}

// NewProfile derives display fields from a fighter.
func NewProfile(f Fighter) Profile {
	first, last := SplitName(f.Name)
	p := Profile{Fighter: f, FirstName: first, LastName: last}
	if raw, ok := f.Record.Get(); ok {
		if rec, ok := ParseRecord(raw); ok {
			p.Tally = optional.Some(rec)
		}
	}
	return p
}
