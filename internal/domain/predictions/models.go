package predictions

import (
	"strings"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
)

// Method is the predicted way a fight ends.
type Method string

const (
	MethodKO         Method = "KO"
	MethodSubmission Method = "SUBMISSION"
	MethodDecision   Method = "DECISION"
)

// Methods lists every method in display order.
var Methods = []Method{MethodKO, MethodSubmission, MethodDecision}

// ParseMethod normalizes the spellings seen upstream ("KO/TKO", "SUB", ...).
func ParseMethod(raw string) (Method, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "KO", "TKO", "KO/TKO":
		return MethodKO, true
	case "SUB", "SUBMISSION":
		return MethodSubmission, true
	case "DEC", "DECISION":
		return MethodDecision, true
	default:
		return "", false
	}
}

// AllowsRound reports whether a round prediction is meaningful for m.
func (m Method) AllowsRound() bool {
	return m == MethodKO || m == MethodSubmission
}

// Status buckets predictions by their graded state.
type Status string

const (
	StatusAll     Status = "all"
	StatusCorrect Status = "correct"
	StatusWrong   Status = "wrong"
	StatusPending Status = "pending"
)

// ParseStatus maps a query value to a Status, defaulting to all.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StatusAll:
		return StatusAll, true
	case StatusCorrect:
		return StatusCorrect, true
	case StatusWrong:
		return StatusWrong, true
	case StatusPending:
		return StatusPending, true
	default:
		return "", false
	}
}

// Result is attached once the backend grades a prediction.
type Result struct {
	FighterCorrect bool                 `json:"fighterCorrect"`
	MethodCorrect  optional.Value[bool] `json:"methodCorrect"`
	RoundCorrect   optional.Value[bool] `json:"roundCorrect"`
}

// Prediction is the canonical forecast for one fight. A nil Result means the
// prediction is pending.
type Prediction struct {
	UserID     int                       `json:"userId"`
	Fight      fights.Ref                `json:"fight"`
	EventKey   string                    `json:"eventKey"`
	EventTitle string                    `json:"eventTitle,omitempty"`
	EventDate  optional.Value[time.Time] `json:"eventDate"`
	FightIndex optional.Value[int]       `json:"fightIndex"`
	Fighter1   string                    `json:"fighter1"`
	Fighter2   string                    `json:"fighter2"`
	Winner     string                    `json:"winner"`
	WinnerID   optional.Value[int]       `json:"winnerId"`
	Method     Method                    `json:"method"`
	Round      optional.Value[int]       `json:"round"`
	Result     *Result                   `json:"result"`
}

// State returns correct, wrong, or pending.
func (p Prediction) State() Status {
	switch {
	case p.Result == nil:
		return StatusPending
	case p.Result.FighterCorrect:
		return StatusCorrect
	default:
		return StatusWrong
	}
}

// Create is the body submitted when a user makes a prediction.
type Create struct {
	UserID    int                 `json:"userId"`
	Fight     fights.Ref          `json:"fight"`
	EventKey  string              `json:"eventKey,omitempty"`
	FightIdx  optional.Value[int] `json:"fightIndex"`
	FighterID optional.Value[int] `json:"fighterId"`
	Winner    string              `json:"winner"`
	Method    Method              `json:"method"`
	Round     optional.Value[int] `json:"round"`
}
