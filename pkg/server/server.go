// Package server exposes the solver over HTTP and streams solutions over
// websockets.
package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wildfunctions/solve24/pkg/engine"
)

// MaxNumbers bounds the card size accepted from clients. Six numbers
// already mean over thirty million candidates per request.
const MaxNumbers = 5

const writeWait = 10 * time.Second

// Options configures a Server.
type Options struct {
	Addr         string
	MaxClients   int // 0 = unlimited
	PingInterval time.Duration
}

// Server serves the solve API and the websocket stream.
type Server struct {
	engine       *engine.Engine
	logger       *zap.Logger
	upgrader     websocket.Upgrader
	maxClients   int
	pingInterval time.Duration
	httpServer   *http.Server

	clientsMu sync.Mutex
	clients   map[string]*websocket.Conn // keyed by session id

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server around e. A nil logger discards everything.
func New(e *engine.Engine, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PingInterval <= 0 {
		opts.PingInterval = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		engine:       e,
		logger:       logger,
		maxClients:   opts.MaxClients,
		pingInterval: opts.PingInterval,
		clients:      make(map[string]*websocket.Conn),
		ctx:          ctx,
		cancel:       cancel,
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin:     sameOrigin,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// sameOrigin accepts requests without an Origin header, from localhost, or
// from the host being served.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return u.Host == r.Host
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/solve", s.handleSolve)
	mux.HandleFunc("/api/pools", s.handlePools)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// ListenAndServe blocks until the server fails or is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops running searches, closes websocket clients and shuts the
// HTTP server down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.httpServer.Shutdown(ctx)
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

// reserve claims a client slot before the upgrade so concurrent handshakes
// cannot exceed the limit.
func (s *Server) reserve(id string) bool {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if s.maxClients > 0 && len(s.clients) >= s.maxClients {
		return false
	}
	s.clients[id] = nil
	return true
}

func (s *Server) attach(id string, conn *websocket.Conn) {
	s.clientsMu.Lock()
	s.clients[id] = conn
	s.clientsMu.Unlock()
}

func (s *Server) release(id string) {
	s.clientsMu.Lock()
	delete(s.clients, id)
	s.clientsMu.Unlock()
}
