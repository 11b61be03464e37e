package predictions

import (
	"math"

	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
)

// Summary holds the headline statistics of a prediction list.
type Summary struct {
	Total    int                        `json:"total"`
	Correct  int                        `json:"correct"`
	Wrong    int                        `json:"wrong"`
	Pending  int                        `json:"pending"`
	Accuracy float64                    `json:"accuracy"`
	Percent  float64                    `json:"accuracyPercent"`
	ByMethod map[predictions.Method]int `json:"byMethod"`
}

// Summarize counts outcomes and methods. Accuracy is correct/(correct+wrong)
// and is zero while nothing has been graded.
func Summarize(list []predictions.Prediction) Summary {
	s := Summary{
		Total:    len(list),
		ByMethod: make(map[predictions.Method]int),
	}
	for _, p := range list {
		switch p.State() {
		case predictions.StatusCorrect:
			s.Correct++
		case predictions.StatusWrong:
			s.Wrong++
		default:
			s.Pending++
		}
		if p.Method != "" {
			s.ByMethod[p.Method]++
		}
	}

	if graded := s.Correct + s.Wrong; graded > 0 {
		s.Accuracy = float64(s.Correct) / float64(graded)
		s.Percent = math.Round(s.Accuracy*1000) / 10
	}
	return s
}
