package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/wildfunctions/solve24/pkg/card"
	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/input"
	"github.com/wildfunctions/solve24/pkg/pool"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handlePools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pools":   pool.Names(),
		"default": pool.Default,
	})
}

// engineFor returns the server's engine, or a copy configured for another
// operator pool.
func (s *Server) engineFor(poolName string) (*engine.Engine, error) {
	cfg := s.engine.Config()
	if poolName == "" || poolName == cfg.Pool {
		return s.engine, nil
	}
	cfg.Pool = poolName
	return engine.New(cfg, engine.WithLogger(s.logger))
}

// buildCard validates a request and builds its card.
func (s *Server) buildCard(numbers []float64, target *float64, poolName string) (*engine.Engine, *card.Card, error) {
	if len(numbers) > MaxNumbers {
		return nil, nil, fmt.Errorf("too many numbers: %d (max %d)", len(numbers), MaxNumbers)
	}
	e, err := s.engineFor(poolName)
	if err != nil {
		return nil, nil, err
	}
	var opts []card.Option
	if target != nil {
		opts = append(opts, card.WithTarget(*target))
	}
	return e, e.Card(numbers, opts...), nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	q := r.URL.Query()

	var target *float64
	if raw := q.Get("target"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid target %q", raw))
			return
		}
		target = &t
	}

	e, c, err := s.buildCard(input.ParseList(q.Get("numbers")), target, q.Get("pool"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := e.Run(r.Context(), c)
	if err != nil {
		s.logger.Warn("solve failed", zap.Stringer("card", c), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
