package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	readHeaderTimeout     = 5 * time.Second
	idleTimeout           = 2 * time.Second
)

type HTTPServer struct {
	httpServer *http.Server
}

// NewHTTPServer wraps the handler in a timeout guard. A
// non-positive handlerTimeout falls back to the default.
func NewHTTPServer(
	addr string, handler http.Handler, handlerTimeout time.Duration,
) HTTPServer {
	if handlerTimeout <= 0 {
		handlerTimeout = defaultHandlerTimeout
	}
	handler = http.TimeoutHandler(handler, handlerTimeout, "unavailable")
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return HTTPServer{s}
}

func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()
	err := s.httpServer.ListenAndServe()
	if err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		log.Error("unexpected server shutdown", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	log.Info("http server is closed")
}
