package web

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/shelkesagar29/WSN-Real-Time-Monitoring/internal/fusion"
)

// Server exposes the websocket snapshot feed, the latest snapshot over
// plain HTTP, and operational endpoints.
type Server struct {
	hub    *Hub
	board  *fusion.Board
	stats  func() interface{}
	logger *zap.Logger
	srv    *http.Server
}

// NewServer wires the HTTP surface. stats supplies the /metrics payload.
func NewServer(addr string, hub *Hub, board *fusion.Board, stats func() interface{}, logger *zap.Logger) *Server {
	s := &Server{
		hub:    hub,
		board:  board,
		stats:  stats,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.serveWs)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start runs the hub and the HTTP listener until the context is cancelled.
func (s *Server) Start(ctx context.Context) {
	go s.hub.Run(ctx)
	go func() {
		s.logger.Info("Web server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server error", zap.Error(err))
		}
	}()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.board.Snapshot()
	if !ok {
		http.Error(w, "no snapshot published yet", http.StatusNotFound)
		return
	}
	writeJSON(w, snapshot)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
