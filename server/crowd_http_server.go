package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crowd-server/config"
	"crowd-server/logging"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type CrowdHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.ServerConfig
}

func NewCrowdHttpServer(router *Router, muxRouter *mux.Router, cfg config.ServerConfig) *CrowdHttpServer {
	return &CrowdHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
	}
}

// Handler returns the fully wrapped application handler.
func (s *CrowdHttpServer) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(false),
	)
	var h http.Handler = s.muxRouter
	if s.cfg.RateLimitPerMinute > 0 {
		h = NewRateLimiter(s.cfg.RateLimitPerMinute).Middleware(h)
	}
	return recovery(cors(h))
}

// Start serves until SIGINT/SIGTERM or ctx is cancelled, then shuts down
// gracefully.
func (s *CrowdHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.cfg.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logging.Info().Msg("server exiting")
	return nil
}
