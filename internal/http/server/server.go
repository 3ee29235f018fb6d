package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type HTTPServer struct {
	logs *zap.SugaredLogger
	srv  *http.Server
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: handler,
		},
	}
}

// Run starts the server in its own goroutine and reports the terminal
// error on the returned channel.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("server starting", "addr", s.srv.Addr)
		errChan <- s.srv.ListenAndServe()
	}()

	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logs.Infow("server shutting down")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}
