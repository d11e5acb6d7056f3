package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wildfunctions/solve24/pkg/engine"
)

// Message types sent to websocket clients.
const (
	TypeSolution = "solution"
	TypeDone     = "done"
	TypeError    = "error"
)

// Request is one solve request read from a websocket client.
type Request struct {
	Numbers []float64 `json:"numbers"`
	Target  *float64  `json:"target,omitempty"`
	Pool    string    `json:"pool,omitempty"`
}

// Message is one frame written to a websocket client.
type Message struct {
	Type    string           `json:"type"`
	Session string           `json:"session"`
	Data    *engine.Solution `json:"data,omitempty"`
	Count   *int             `json:"count,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	if !s.reserve(id) {
		http.Error(w, "Maximum clients reached", http.StatusServiceUnavailable)
		return
	}
	defer s.release(id)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	s.attach(id, conn)

	log := s.logger.With(zap.String("session", id))
	log.Info("client connected", zap.String("remote", r.RemoteAddr))
	defer log.Info("client disconnected")

	pongWait := 2 * s.pingInterval
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(conn, done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			if err := s.send(conn, Message{Type: TypeError, Session: id, Error: "malformed request: " + err.Error()}); err != nil {
				return
			}
			continue
		}
		if err := s.stream(conn, id, req, log); err != nil {
			log.Debug("stream aborted", zap.Error(err))
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// keepAlive pings the client until done, and sends a close frame when the
// server shuts down. WriteControl may run concurrently with the writer.
func (s *Server) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		case <-s.ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			conn.Close()
			return
		}
	}
}

// stream writes one solution frame per solution and then a done frame. A
// bad request produces an error frame and leaves the connection open; only
// write failures and shutdown are returned.
func (s *Server) stream(conn *websocket.Conn, id string, req Request, log *zap.Logger) error {
	e, c, err := s.buildCard(req.Numbers, req.Target, req.Pool)
	if err != nil {
		return s.send(conn, Message{Type: TypeError, Session: id, Error: err.Error()})
	}

	start := time.Now()
	count := 0
	err = e.Each(s.ctx, c, func(sol engine.Solution) error {
		count++
		return s.send(conn, Message{Type: TypeSolution, Session: id, Data: &sol})
	})
	if err != nil {
		return err
	}
	log.Info("streamed",
		zap.Stringer("card", c),
		zap.Int("solutions", count),
		zap.Duration("elapsed", time.Since(start)))
	return s.send(conn, Message{Type: TypeDone, Session: id, Count: &count})
}

func (s *Server) send(conn *websocket.Conn, msg Message) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
