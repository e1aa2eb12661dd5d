package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// writeMargin is added on top of the request budget for encoding and the
// fallback path.
var writeMargin = 15 * time.Second

// Server runs the HTTP listener until its context ends.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          ports.Logger
}

// NewServer binds handler to host:port. requestBudget is the longest a
// handler may spend upstream, normally the generative timeout. The write
// deadline is requestBudget plus writeMargin.
func NewServer(settings domain.ServerSettings, requestBudget time.Duration, handler http.Handler, logger ports.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              settings.ListenAddr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      writeTimeoutFor(requestBudget),
		},
		shutdownTimeout: settings.ShutdownGrace(),
		logger:          logger,
	}
}

func writeTimeoutFor(requestBudget time.Duration) time.Duration {
	if requestBudget <= 0 {
		requestBudget = domain.DefaultGenerativeTimeout
	}
	return requestBudget + writeMargin
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// WriteTimeout is the per-response write deadline.
func (s *Server) WriteTimeout() time.Duration {
	return s.httpServer.WriteTimeout
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", map[string]interface{}{"addr": ln.Addr().String()})
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
