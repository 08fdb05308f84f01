// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package health serves the liveness endpoint the hosting supervisor
// probes. It runs independently of message traffic; the only failure
// mode is the listener failing to bind, which is fatal to the process.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/resourceful-ai/suitebot/pkg/logger"
)

const body = `{"status": "healthy", "bot": "running"}`

type Server struct {
	server *http.Server
}

func NewServer(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleHealth)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Start serves in a background goroutine. A bind or serve failure is
// delivered on the returned channel; normal shutdown is not.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		logger.InfoCF("health", "Liveness endpoint listening", map[string]interface{}{
			"addr": s.server.Addr,
		})
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return errCh
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the health handler for probing and tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
