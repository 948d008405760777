package testutil

import (
	"context"
	"errors"
	"net/http"

	"scriptblox-service/internal/poller"
)

// StubPoller implements the server's Poller interface for tests.
type StubPoller struct {
	StartCalls int
	StopCalls  int
	Err        error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(ctx context.Context) {
	_ = ctx
	p.StartCalls++
}

func (p *StubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

// StubHTTPServer implements the server's httpServer interface for tests.
type StubHTTPServer struct {
	ListenErr     error
	ShutdownErr   error
	ListenCalls   int
	ShutdownCalls int
	AddrVal       string
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	if s.ListenErr != nil {
		return s.ListenErr
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler { return nil }

// ErrListen is a sentinel for listen failures in server tests.
var ErrListen = errors.New("listen failed")
