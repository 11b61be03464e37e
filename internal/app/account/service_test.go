package account

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
	"github.com/preston-bernstein/fightcard-service/internal/session"
	"github.com/preston-bernstein/fightcard-service/internal/teststubs"
	"github.com/preston-bernstein/fightcard-service/internal/testutil"
)

type stubClient struct {
	token auth.Token
	err   error

	registered []auth.Credentials
	logins     []auth.Credentials
}

func (s *stubClient) Register(ctx context.Context, creds auth.Credentials) error {
	s.registered = append(s.registered, creds)
	return s.err
}

func (s *stubClient) Login(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	s.logins = append(s.logins, creds)
	return s.token, s.err
}

func TestRegisterNormalizesAndRequiresCredentials(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, session.NewManager(session.NewMemoryStore()))

	if err := svc.Register(context.Background(), auth.Credentials{Username: "  ", Password: "pw"}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if err := svc.Register(context.Background(), auth.Credentials{Username: "ana", Password: ""}); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if err := svc.Register(context.Background(), auth.Credentials{Username: " ana ", Password: " pw "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.registered) != 1 {
		t.Fatalf("expected one register call, got %d", len(client.registered))
	}
	if got := client.registered[0]; got.Username != "ana" || got.Password != " pw " {
		t.Fatalf("unexpected credentials sent %+v", got)
	}
}

func TestLoginPersistsSessionAndLogoutClearsIt(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{token: auth.Token{AccessToken: testutil.Token("42"), TokenType: "bearer"}}
	sessions := session.NewManager(session.NewMemoryStore())
	svc := NewService(client, sessions)

	sess, err := svc.Login(ctx, auth.Credentials{Username: " ana ", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.UserID != 42 || sess.Username != "ana" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if cur, err := svc.Current(ctx); err != nil || cur.UserID != 42 {
		t.Fatalf("expected current session, got %+v err %v", cur, err)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Current(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}

func TestLoginFailureDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("bad credentials")
	sessions := session.NewManager(session.NewMemoryStore())
	svc := NewService(&stubClient{err: boom}, sessions)

	if _, err := svc.Login(ctx, auth.Credentials{Username: "ana", Password: "pw"}); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if _, err := sessions.Current(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected no session after failed login, got %v", err)
	}
}

func TestLoginSurfacesStoreFailure(t *testing.T) {
	store := &teststubs.StubSessionStore{SaveErr: errors.New("disk full")}
	client := &stubClient{token: auth.Token{AccessToken: testutil.Token("42")}}
	svc := NewService(client, session.NewManager(store))

	if _, err := svc.Login(context.Background(), auth.Credentials{Username: "ana", Password: "pw"}); !errors.Is(err, store.SaveErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestLoginWithUndecodableTokenLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	client := &stubClient{token: auth.Token{AccessToken: "opaque-token", TokenType: "bearer"}}
	store := session.NewMemoryStore()
	svc := NewService(client, session.NewManager(store))

	if _, err := svc.Login(ctx, auth.Credentials{Username: "ana", Password: "pw"}); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, ok, err := store.Get(ctx, session.KeyAccessToken); err != nil || ok {
		t.Fatalf("expected no stored token after failed login, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := store.Get(ctx, session.KeyUsername); ok {
		t.Fatalf("expected no stored username after failed login")
	}
}
