package predictions

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
)

// Direction orders predictions by event date.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps a query value to a Direction, defaulting to descending
// (most recent events first).
func ParseDirection(raw string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case "", Descending, "newest":
		return Descending, true
	case Ascending, "oldest":
		return Ascending, true
	default:
		return "", false
	}
}

// Sort orders predictions by their event's date. Ties keep their input
// order. Events without a resolved date count as the latest possible date:
// last when ascending, first when descending.
func Sort(list []predictions.Prediction, meta Meta, dir Direction) []predictions.Prediction {
	out := clone(list)
	sort.SliceStable(out, func(i, j int) bool {
		di, oki := meta.date(out[i].EventKey)
		dj, okj := meta.date(out[j].EventKey)
		if dir == Ascending {
			switch {
			case oki && okj:
				return di.Before(dj)
			default:
				return oki && !okj
			}
		}
		switch {
		case oki && okj:
			return di.After(dj)
		default:
			return !oki && okj
		}
	})
	return out
}
