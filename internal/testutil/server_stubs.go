package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/preston-bernstein/fightcard-service/internal/poller"
)

// StubPoller implements the server's probe contract for tests.
type StubPoller struct {
	mu         sync.Mutex
	StartCalls int
	StopCalls  int
	Err        error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(ctx context.Context) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StartCalls++
}

func (p *StubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.StatusVal
}

// Calls returns the start and stop counts.
func (p *StubPoller) Calls() (starts, stops int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.StartCalls, p.StopCalls
}

// StubHTTPServer implements the server's httpServer contract for tests.
type StubHTTPServer struct {
	mu            sync.Mutex
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// Calls returns the listen and shutdown counts.
func (s *StubHTTPServer) Calls() (listens, shutdowns int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ListenCalls, s.ShutdownCalls
}

// ErrHTTPServer fails on ListenAndServe.
type ErrHTTPServer struct {
	mu            sync.Mutex
	ShutdownCalls int
}

func (e *ErrHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *ErrHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ShutdownCalls++
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return ":0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}
