package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server wraps the HTTP server, the live update hub and the config watcher.
type Server struct {
	httpServer *http.Server
	watcher    *ConfigWatcher
	wsHub      *WebSocketHub
}

// NewServer wires handlers, live updates and config reloading for app.
// Config watching is skipped, with a warning, when the watcher can't be created.
func NewServer(app *AppContext, port int) *Server {
	mux := http.NewServeMux()

	handler := NewHandler(app.CardService, app.DeckService)
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub()
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)
	app.CardService.Subscribe(wsHub)

	watcher, err := NewConfigWatcher(app.Paths.ConfigPath(), app.LoadConfig)
	if err != nil {
		log.Printf("Warning: config reload disabled: %v", err)
		watcher = nil
	} else {
		// Apply first so pages reloaded by the hub see the new settings.
		watcher.Subscribe(app)
		watcher.Subscribe(wsHub)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:        fmt.Sprintf(":%d", port),
			Handler:     Logging(Cors(mux)),
			ReadTimeout: 15 * time.Second,
			// No WriteTimeout: it would cut off long-lived websocket connections.
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: config reload disabled: %v", err)
		}
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			log.Printf("Warning: failed to stop config watcher: %v", err)
		}
	}
	s.wsHub.Close()
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
