package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/fightcard-service/internal/api"
	"github.com/preston-bernstein/fightcard-service/internal/app/account"
	appevents "github.com/preston-bernstein/fightcard-service/internal/app/events"
	appfighters "github.com/preston-bernstein/fightcard-service/internal/app/fighters"
	apppredictions "github.com/preston-bernstein/fightcard-service/internal/app/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
	"github.com/preston-bernstein/fightcard-service/internal/poller"
	"github.com/preston-bernstein/fightcard-service/internal/session"
	"github.com/preston-bernstein/fightcard-service/internal/testutil"
)

// fixture wires a Handler to a fake fight API.
type fixture struct {
	handler  *Handler
	upstream *http.ServeMux
	sessions *session.Manager
}

func newFixture(t *testing.T, statusFn func() poller.Status) *fixture {
	t.Helper()
	upstream := http.NewServeMux()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := api.NewClient(api.Config{
		BaseURL:     srv.URL,
		Timeout:     time.Second,
		MaxAttempts: 1,
		RetryDelay:  0,
	})
	sessions := session.NewManager(session.NewMemoryStore())
	h := NewHandler(Services{
		Events:      appevents.NewService(client),
		Fighters:    appfighters.NewService(client, 2),
		Predictions: apppredictions.NewService(client, sessions, nil),
		Account:     account.NewService(client, sessions),
	}, nil, statusFn)

	return &fixture{handler: h, upstream: upstream, sessions: sessions}
}

// login stores a session for user id 7.
func (f *fixture) login(t *testing.T) string {
	t.Helper()
	token := testutil.Token("7")
	if err := f.sessions.Save(context.Background(), "ana", auth.Token{AccessToken: token}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return token
}

func (f *fixture) respond(pattern string, status int, body string) {
	f.upstream.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	return testutil.ServeRequest(h, req)
}

func withPath(req *http.Request, name, value string) *http.Request {
	req.SetPathValue(name, value)
	return req
}
