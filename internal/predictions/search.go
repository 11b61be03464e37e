// Package predictions turns a user's flat prediction list into the searched,
// filtered, sorted and grouped views served by the predictions endpoint.
// Every function here is pure: inputs are never modified.
package predictions

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
)

// Search keeps predictions whose winner, either fighter, event title or
// method contains query, ignoring case. A blank query returns every
// prediction.
func Search(list []predictions.Prediction, query string) []predictions.Prediction {
	query = strings.TrimSpace(query)
	if query == "" {
		return clone(list)
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]predictions.Prediction, 0, len(list))
	for _, p := range list {
		for _, field := range searchFields(p) {
			if strings.Contains(fold.String(field), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func searchFields(p predictions.Prediction) []string {
	return []string{p.Winner, p.Fighter1, p.Fighter2, p.EventTitle, string(p.Method)}
}

func clone(list []predictions.Prediction) []predictions.Prediction {
	out := make([]predictions.Prediction, len(list))
	copy(out, list)
	return out
}
