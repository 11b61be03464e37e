package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/optional"
	"github.com/preston-bernstein/fightcard-service/internal/timeutil"
)

// Revision selects the backend schema the client speaks. It is configured
// explicitly; responses are never sniffed to pick a shape.
type Revision string

const (
	// RevisionFightID identifies fights by numeric id and grades predictions
	// with a per-field result object.
	RevisionFightID Revision = "fight-id"
	// RevisionEventURL identifies fights by event URL plus index and grades
	// predictions with a flat status string.
	RevisionEventURL Revision = "event-url"
)

// ErrIncompatible is returned when a request cannot be expressed in the
// configured revision's schema.
var ErrIncompatible = errors.New("request not supported by the configured API revision")

// ParseRevision maps a config value to a Revision.
func ParseRevision(raw string) (Revision, error) {
	switch Revision(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RevisionFightID:
		return RevisionFightID, nil
	case RevisionEventURL:
		return RevisionEventURL, nil
	default:
		return "", fmt.Errorf("unknown api revision %q", raw)
	}
}

func resolveRevision(r Revision) Revision {
	if r == RevisionEventURL {
		return RevisionEventURL
	}
	return RevisionFightID
}

// predictionAdapter maps one revision's wire shapes to the canonical model.
type predictionAdapter interface {
	eventFights(eventID int) (string, url.Values)
	createBody(c predictions.Create) (any, error)
	decode(raw json.RawMessage) (predictions.Prediction, error)
}

func adapterFor(r Revision) predictionAdapter {
	if r == RevisionEventURL {
		return eventURLAdapter{}
	}
	return fightIDAdapter{}
}

type resultWire struct {
	FighterCorrect *bool `json:"fighter_correct"`
	MethodCorrect  *bool `json:"method_correct"`
	RoundCorrect   *bool `json:"round_correct"`
}

type fightIDPredictionWire struct {
	UserID       int         `json:"user_id"`
	FightID      *int        `json:"fight_id"`
	EventID      *int        `json:"event_id"`
	EventTitle   string      `json:"event_title"`
	EventDate    *string     `json:"event_date"`
	MatchNumber  *int        `json:"match_number"`
	Fighter1ID   *int        `json:"fighter_1_id"`
	Fighter2ID   *int        `json:"fighter_2_id"`
	Fighter1Name string      `json:"fighter_1_name"`
	Fighter2Name string      `json:"fighter_2_name"`
	Winner       *int        `json:"winner"`
	WinnerName   *string     `json:"winner_name"`
	Method       string      `json:"method"`
	Round        *int        `json:"round"`
	Result       *resultWire `json:"result"`
}

type fightIDCreateWire struct {
	UserID    int    `json:"user_id"`
	FightID   int    `json:"fight_id"`
	FighterID int    `json:"fighter_id"`
	Method    string `json:"method"`
	Round     *int   `json:"round"`
}

type fightIDAdapter struct{}

func (fightIDAdapter) eventFights(eventID int) (string, url.Values) {
	return "/fights/event", url.Values{"event_id": {strconv.Itoa(eventID)}}
}

func (fightIDAdapter) createBody(c predictions.Create) (any, error) {
	fightID, ok := c.Fight.ID.Get()
	if !ok {
		return nil, fmt.Errorf("%w: numeric fight id required", ErrIncompatible)
	}
	fighterID, ok := c.FighterID.Get()
	if !ok {
		return nil, fmt.Errorf("%w: predicted fighter id required", ErrIncompatible)
	}
	return fightIDCreateWire{
		UserID:    c.UserID,
		FightID:   fightID,
		FighterID: fighterID,
		Method:    string(c.Method),
		Round:     c.Round.Ptr(),
	}, nil
}

func (fightIDAdapter) decode(raw json.RawMessage) (predictions.Prediction, error) {
	var w fightIDPredictionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return predictions.Prediction{}, err
	}

	p := predictions.Prediction{
		UserID:     w.UserID,
		EventTitle: strings.TrimSpace(w.EventTitle),
		FightIndex: optional.FromPtr(w.MatchNumber),
		Fighter1:   w.Fighter1Name,
		Fighter2:   w.Fighter2Name,
		WinnerID:   optional.FromPtr(w.Winner),
		Method:     normalizeMethod(w.Method),
		Round:      positive(w.Round),
		Result:     w.Result.canonical(),
	}

	if w.FightID != nil {
		p.Fight = fights.RefByID(*w.FightID)
	} else {
		p.Fight = fights.RefByNames(w.Fighter1Name, w.Fighter2Name)
	}

	switch {
	case p.EventTitle != "":
		p.EventKey = p.EventTitle
	case w.EventID != nil:
		p.EventKey = "event " + strconv.Itoa(*w.EventID)
	}

	if w.EventDate != nil {
		if t, err := timeutil.ParseEventDate(*w.EventDate); err == nil {
			p.EventDate = optional.Some(t)
		}
	}

	p.Winner = winnerName(w)
	return p, nil
}

// canonical folds a missing or empty result object into pending (nil).
func (r *resultWire) canonical() *predictions.Result {
	if r == nil || r.FighterCorrect == nil {
		return nil
	}
	return &predictions.Result{
		FighterCorrect: *r.FighterCorrect,
		MethodCorrect:  optional.FromPtr(r.MethodCorrect),
		RoundCorrect:   optional.FromPtr(r.RoundCorrect),
	}
}

func winnerName(w fightIDPredictionWire) string {
	if name := optional.StringPtr(w.WinnerName); name.IsPresent() {
		return name.OrElse("")
	}
	if w.Winner == nil {
		return ""
	}
	switch {
	case w.Fighter1ID != nil && *w.Fighter1ID == *w.Winner:
		return w.Fighter1Name
	case w.Fighter2ID != nil && *w.Fighter2ID == *w.Winner:
		return w.Fighter2Name
	default:
		return ""
	}
}

type eventURLPredictionWire struct {
	UserID            int    `json:"user_id"`
	EventURL          string `json:"event_url"`
	FightIdx          *int   `json:"fight_idx"`
	Fighter1Name      string `json:"fighter_1_name"`
	Fighter2Name      string `json:"fighter_2_name"`
	FighterPrediction string `json:"fighter_prediction"`
	MethodPrediction  string `json:"method_prediction"`
	RoundPrediction   *int   `json:"round_prediction"`
	Status            string `json:"status"`
}

type eventURLCreateWire struct {
	UserID            int    `json:"user_id"`
	EventURL          string `json:"event_url"`
	FightIdx          int    `json:"fight_idx"`
	FighterPrediction string `json:"fighter_prediction"`
	MethodPrediction  string `json:"method_prediction"`
	RoundPrediction   *int   `json:"round_prediction"`
}

type eventURLAdapter struct{}

func (eventURLAdapter) eventFights(eventID int) (string, url.Values) {
	return "/fights/event/" + strconv.Itoa(eventID), nil
}

func (eventURLAdapter) createBody(c predictions.Create) (any, error) {
	if strings.TrimSpace(c.EventKey) == "" {
		return nil, fmt.Errorf("%w: event url required", ErrIncompatible)
	}
	idx, ok := c.FightIdx.Get()
	if !ok {
		return nil, fmt.Errorf("%w: fight index required", ErrIncompatible)
	}
	if strings.TrimSpace(c.Winner) == "" {
		return nil, fmt.Errorf("%w: predicted fighter name required", ErrIncompatible)
	}
	return eventURLCreateWire{
		UserID:            c.UserID,
		EventURL:          c.EventKey,
		FightIdx:          idx,
		FighterPrediction: c.Winner,
		MethodPrediction:  string(c.Method),
		RoundPrediction:   c.Round.Ptr(),
	}, nil
}

func (eventURLAdapter) decode(raw json.RawMessage) (predictions.Prediction, error) {
	var w eventURLPredictionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return predictions.Prediction{}, err
	}

	result, err := statusResult(w.Status)
	if err != nil {
		return predictions.Prediction{}, err
	}

	p := predictions.Prediction{
		UserID:     w.UserID,
		EventKey:   w.EventURL,
		FightIndex: optional.FromPtr(w.FightIdx),
		Fighter1:   w.Fighter1Name,
		Fighter2:   w.Fighter2Name,
		Winner:     w.FighterPrediction,
		Method:     normalizeMethod(w.MethodPrediction),
		Round:      positive(w.RoundPrediction),
		Result:     result,
	}

	switch {
	case w.Fighter1Name != "" && w.Fighter2Name != "":
		p.Fight = fights.RefByNames(w.Fighter1Name, w.Fighter2Name)
	case w.FightIdx != nil:
		p.Fight = fights.Ref{Key: w.EventURL + "#" + strconv.Itoa(*w.FightIdx)}
	default:
		p.Fight = fights.Ref{Key: w.EventURL}
	}
	return p, nil
}

// statusResult maps the flat status string. Blank and "pending" are pending;
// only the winner pick is graded by this revision.
func statusResult(status string) (*predictions.Result, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "pending":
		return nil, nil
	case "correct":
		return &predictions.Result{FighterCorrect: true}, nil
	case "wrong", "incorrect":
		return &predictions.Result{FighterCorrect: false}, nil
	default:
		return nil, fmt.Errorf("unknown prediction status %q", status)
	}
}

func normalizeMethod(raw string) predictions.Method {
	if m, ok := predictions.ParseMethod(raw); ok {
		return m
	}
	return predictions.Method(strings.ToUpper(strings.TrimSpace(raw)))
}
