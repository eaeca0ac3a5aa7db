package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/michaelwsd/lingualift/internal/adapter/memory"
	"github.com/michaelwsd/lingualift/internal/auth"
	"github.com/michaelwsd/lingualift/internal/config"
	"github.com/michaelwsd/lingualift/internal/render"
	"github.com/michaelwsd/lingualift/internal/service/collection"
	"github.com/michaelwsd/lingualift/internal/service/lookup"
	"github.com/michaelwsd/lingualift/internal/service/worksheet"
	"github.com/michaelwsd/lingualift/internal/transport/middleware"
	"github.com/michaelwsd/lingualift/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.ProviderName()),
		slog.String("collection_store", cfg.Collection.Store),
		slog.String("lookup_cache", cfg.Lookup.Cache),
	)

	gens, err := NewGenerators(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer gens.Close()

	words, tx, closeStore, err := newWordStore(ctx, cfg.Collection, cfg.Session, logger)
	if err != nil {
		return fmt.Errorf("collection store: %w", err)
	}
	defer closeStore()

	stack, err := newHTTPStack(cfg, logger, gens, words, tx)
	if err != nil {
		return err
	}
	defer stack.stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      stack.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger, stack.lookup.Shutdown)
}

// httpStack is the routed, middleware-wrapped API with the pieces that need
// stopping on shutdown.
type httpStack struct {
	handler http.Handler
	lookup  *lookup.Service
	stop    func()
}

func newHTTPStack(cfg *config.Config, logger *slog.Logger, gens *Generators, words wordStore, tx txRunner) (*httpStack, error) {
	gen := gens.Content

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	gate, err := auth.NewGate(logger, jwtManager, cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth gate: %w", err)
	}

	printer, err := render.NewPrinter()
	if err != nil {
		return nil, fmt.Errorf("printer: %w", err)
	}

	collectionSvc := collection.NewService(logger, words, tx, gen, gen, cfg.Collection.MaxWords, collectionScope(cfg.Collection))
	worksheetSvc := worksheet.NewService(logger, gens.Provider, Limits(cfg.LLM))
	lookupSvc := lookup.NewService(logger, gen, cfg.Session.MaxSessions, cfg.Session.TTL)
	workspaces := memory.NewWorkspaces(cfg.Session.MaxSessions, cfg.Session.TTL)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "collection", Pinger: words},
			rest.Check{Name: "lookup_cache", Pinger: gens.cache},
		),
		Auth:       rest.NewAuthHandler(gate, logger),
		Passage:    rest.NewPassageHandler(gen, workspaces, render.Passage, printer, logger),
		Lookup:     rest.NewLookupHandler(gen, lookupSvc, cfg.Lookup.PopoverWaitTime, logger),
		Collection: rest.NewCollectionHandler(collectionSvc, workspaces, render.Passage, printer, logger),
		Worksheet:  rest.NewWorksheetHandler(worksheetSvc, collectionSvc, workspaces, printer, logger),
	})

	stop := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		stop = limiter.Stop
		limit = limiter.Limit()
	}
	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Auth(gate),
	)

	return &httpStack{
		handler: chain(router),
		lookup:  lookupSvc,
		stop:    stop,
	}, nil
}

// serve runs srv until ctx is cancelled, then shuts it down and runs drain
// within the shutdown timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger, drain func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := drain(shutdownCtx); err != nil {
		logger.Warn("in-flight lookups abandoned", slog.String("error", err.Error()))
	}
	logger.Info("stopped")
	return nil
}
