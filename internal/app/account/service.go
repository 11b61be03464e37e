package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
	"github.com/preston-bernstein/fightcard-service/internal/session"
)

// ErrMissingCredentials is returned when username or password is blank.
var ErrMissingCredentials = errors.New("username and password required")

// Client defines the upstream auth calls.
type Client interface {
	Register(ctx context.Context, creds auth.Credentials) error
	Login(ctx context.Context, creds auth.Credentials) (auth.Token, error)
}

// Sessions persists the login.
type Sessions interface {
	Save(ctx context.Context, username string, token auth.Token) error
	Clear(ctx context.Context) error
	Current(ctx context.Context) (session.Session, error)
}

// Service handles registration, login and logout.
type Service struct {
	client   Client
	sessions Sessions
}

// NewService constructs a Service.
func NewService(client Client, sessions Sessions) *Service {
	return &Service{client: client, sessions: sessions}
}

// Register creates an account. It does not log in.
func (s *Service) Register(ctx context.Context, creds auth.Credentials) error {
	creds, err := checked(creds)
	if err != nil {
		return err
	}
	return s.client.Register(ctx, creds)
}

// Login authenticates and persists the session.
func (s *Service) Login(ctx context.Context, creds auth.Credentials) (session.Session, error) {
	creds, err := checked(creds)
	if err != nil {
		return session.Session{}, err
	}
	token, err := s.client.Login(ctx, creds)
	if err != nil {
		return session.Session{}, err
	}
	if err := s.sessions.Save(ctx, creds.Username, token); err != nil {
		return session.Session{}, fmt.Errorf("persist session: %w", err)
	}
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		// A token that cannot be read back must not stay stored.
		_ = s.sessions.Clear(ctx)
		return session.Session{}, err
	}
	return sess, nil
}

// Logout forgets the stored session.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the logged-in session.
func (s *Service) Current(ctx context.Context) (session.Session, error) {
	return s.sessions.Current(ctx)
}

func checked(creds auth.Credentials) (auth.Credentials, error) {
	creds = creds.Normalize()
	if creds.Username == "" || creds.Password == "" {
		return creds, ErrMissingCredentials
	}
	return creds, nil
}
