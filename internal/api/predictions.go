package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	"github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
)

// CreatePrediction submits a new prediction in the configured revision's
// body shape.
func (c *Client) CreatePrediction(ctx context.Context, token string, body predictions.Create) error {
	payload, err := c.adapter.createBody(body)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		op:     OpCreatePrediction,
		method: http.MethodPost,
		path:   "/predict",
		token:  token,
		body:   payload,
	}, nil)
	return err
}

// Prediction returns the user's prediction for a fight, or nil when they
// have not made one yet.
func (c *Client) Prediction(ctx context.Context, token string, userID int, fight fights.Ref) (*predictions.Prediction, error) {
	var raw json.RawMessage
	found, err := c.do(ctx, request{
		op:          OpPrediction,
		method:      http.MethodGet,
		path:        "/predict/" + strconv.Itoa(userID) + "/" + url.PathEscape(fight.String()),
		token:       token,
		absentOn404: true,
	}, &raw)
	if err != nil {
		return nil, err
	}
	if !found || len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	p, err := c.adapter.decode(raw)
	if err != nil {
		return nil, c.decodeError(OpPrediction, err)
	}
	return &p, nil
}

// Predictions lists every prediction a user has made. 404 means none.
func (c *Client) Predictions(ctx context.Context, token string, userID int) ([]predictions.Prediction, error) {
	var raw rawList
	if _, err := c.do(ctx, request{
		op:          OpPredictions,
		method:      http.MethodGet,
		path:        "/predict/all",
		query:       url.Values{"user_id": {strconv.Itoa(userID)}},
		token:       token,
		absentOn404: true,
	}, &raw); err != nil {
		return nil, err
	}

	out := make([]predictions.Prediction, 0, len(raw))
	for i, item := range raw {
		p, err := c.adapter.decode(item)
		if err != nil {
			return nil, c.decodeError(OpPredictions, fmt.Errorf("item %d: %w", i, err))
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) decodeError(op string, err error) *Error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf("unexpected %s prediction payload: %v", c.revision, err),
		Err:     err,
	}
}
