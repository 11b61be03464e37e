package predictions

import "github.com/preston-bernstein/fightcard-service/internal/domain/predictions"

// FilterStatus keeps predictions in the given graded state. StatusAll keeps
// everything.
func FilterStatus(list []predictions.Prediction, status predictions.Status) []predictions.Prediction {
	if status == predictions.StatusAll || status == "" {
		return clone(list)
	}
	out := make([]predictions.Prediction, 0, len(list))
	for _, p := range list {
		if p.State() == status {
			out = append(out, p)
		}
	}
	return out
}
