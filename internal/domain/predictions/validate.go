package predictions

import (
	"errors"
	"fmt"
)

// MaxRounds bounds round predictions (championship bouts go five rounds).
const MaxRounds = 5

var (
	ErrMissingFight    = errors.New("fight reference required")
	ErrMissingWinner   = errors.New("predicted winner required")
	ErrInvalidMethod   = errors.New("method must be KO, SUBMISSION or DECISION")
	ErrRoundNotAllowed = errors.New("round cannot be predicted for a decision")
	ErrRoundOutOfRange = fmt.Errorf("round must be between 1 and %d", MaxRounds)
)

// Validate checks the invariants of a new prediction.
func (c Create) Validate() error {
	if !c.Fight.ID.IsPresent() && c.Fight.Key == "" {
		return ErrMissingFight
	}
	if c.Winner == "" && !c.FighterID.IsPresent() {
		return ErrMissingWinner
	}
	switch c.Method {
	case MethodKO, MethodSubmission, MethodDecision:
	default:
		return ErrInvalidMethod
	}
	round, hasRound := c.Round.Get()
	if !hasRound {
		return nil
	}
	if !c.Method.AllowsRound() {
		return ErrRoundNotAllowed
	}
	if round < 1 || round > MaxRounds {
		return ErrRoundOutOfRange
	}
	return nil
}
