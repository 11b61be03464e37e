package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
)

// ErrNoSession means no usable login is stored: nothing saved, or a token
// that cannot be decoded, carries no user id, or has expired.
var ErrNoSession = errors.New("login required")

// Session is the current login.
type Session struct {
	Username string    `json:"username"`
	UserID   int       `json:"userId"`
	Token    string    `json:"-"`
	Expires  time.Time `json:"expires,omitempty"`
}

// Manager reads and writes the session through a Store.
type Manager struct {
	store  Store
	parser *jwt.Parser
	now    func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:  store,
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Save stores the username and token after a successful login.
func (m *Manager) Save(ctx context.Context, username string, token auth.Token) error {
	if strings.TrimSpace(token.AccessToken) == "" {
		return fmt.Errorf("save session: empty access token")
	}
	return m.store.Save(ctx, map[string]string{
		KeyUsername:    strings.TrimSpace(username),
		KeyAccessToken: token.AccessToken,
	})
}

// Clear removes everything stored for the session.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// Current returns the stored session. The token's claims are decoded without
// verifying the signature; the backend verifies it on every call.
func (m *Manager) Current(ctx context.Context) (Session, error) {
	token, ok, err := m.store.Get(ctx, KeyAccessToken)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	if !ok || token == "" {
		return Session{}, ErrNoSession
	}
	username, _, err := m.store.Get(ctx, KeyUsername)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := m.parser.ParseUnverified(token, claims); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	userID, ok := userIDFrom(claims)
	if !ok {
		return Session{}, fmt.Errorf("%w: token carries no numeric user id", ErrNoSession)
	}

	s := Session{Username: username, UserID: userID, Token: token}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if !exp.After(m.now()) {
			return Session{}, fmt.Errorf("%w: token expired", ErrNoSession)
		}
		s.Expires = exp.Time.UTC()
	}
	return s, nil
}

// userIDFrom reads a numeric subject, falling back to a user_id claim.
func userIDFrom(claims jwt.MapClaims) (int, bool) {
	if sub, err := claims.GetSubject(); err == nil {
		if id, err := strconv.Atoi(strings.TrimSpace(sub)); err == nil && id > 0 {
			return id, true
		}
	}
	switch v := claims["user_id"].(type) {
	case float64:
		if v > 0 && v == float64(int(v)) {
			return int(v), true
		}
	case string:
		if id, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
