package predictions

import (
	"context"
	"errors"
	"strings"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	domainpredictions "github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/session"
)

// ErrNotFound means the user has not predicted the fight yet.
var ErrNotFound = errors.New("no prediction yet")

// Client defines the upstream prediction calls.
type Client interface {
	Predictions(ctx context.Context, token string, userID int) ([]domainpredictions.Prediction, error)
	Prediction(ctx context.Context, token string, userID int, fight fights.Ref) (*domainpredictions.Prediction, error)
	CreatePrediction(ctx context.Context, token string, body domainpredictions.Create) error
}

// Sessions yields the logged-in user.
type Sessions interface {
	Current(ctx context.Context) (session.Session, error)
}

// Service runs prediction operations on behalf of the current session.
type Service struct {
	client   Client
	sessions Sessions
	pipeline *predictions.Pipeline
}

// NewService constructs a Service. A nil pipeline derives views without
// event lookups.
func NewService(client Client, sessions Sessions, pipeline *predictions.Pipeline) *Service {
	if pipeline == nil {
		pipeline = predictions.NewPipeline(nil)
	}
	return &Service{client: client, sessions: sessions, pipeline: pipeline}
}

// View loads every prediction of the current user and derives the screen.
func (s *Service) View(ctx context.Context, q predictions.Query) (predictions.View, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return predictions.View{}, err
	}
	list, err := s.client.Predictions(ctx, sess.Token, sess.UserID)
	if err != nil {
		return predictions.View{}, err
	}
	view := s.pipeline.Build(ctx, list, q)
	if view.Predictions == nil {
		view.Predictions = []domainpredictions.Prediction{}
	}
	if view.Groups == nil {
		view.Groups = []predictions.Group{}
	}
	return view, nil
}

// Get returns the current user's prediction for a fight.
func (s *Service) Get(ctx context.Context, ref fights.Ref) (domainpredictions.Prediction, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return domainpredictions.Prediction{}, err
	}
	p, err := s.client.Prediction(ctx, sess.Token, sess.UserID, ref)
	if err != nil {
		return domainpredictions.Prediction{}, err
	}
	if p == nil {
		return domainpredictions.Prediction{}, ErrNotFound
	}
	return *p, nil
}

// Create validates and submits a prediction for the current user.
func (s *Service) Create(ctx context.Context, body domainpredictions.Create) error {
	if m, ok := domainpredictions.ParseMethod(string(body.Method)); ok {
		body.Method = m
	}
	body.Winner = strings.TrimSpace(body.Winner)
	if err := body.Validate(); err != nil {
		return err
	}
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	body.UserID = sess.UserID
	return s.client.CreatePrediction(ctx, sess.Token, body)
}
