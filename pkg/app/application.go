package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"hoteldesk/internal/health"
	"hoteldesk/pkg/config"
	"hoteldesk/pkg/contracts"
	apperrors "hoteldesk/pkg/errors"
	httputil "hoteldesk/pkg/http"
	"hoteldesk/pkg/middleware"
)

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.RateLimiter
	healthHandler    http.Handler
	appHTTPHandler   http.Handler
	shutdownHooks    []shutdownHook
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp wires the probes and every resource handler behind their
// middleware stacks and prepares the HTTP server.
func (a *Application) SetApp(db health.Pinger, handlers ...contracts.Handler) {
	a.setHealthHandler(db)
	a.setAppHandler(handlers)
	a.setAppServer()
}

// OnShutdown registers fn to run after the server has drained, in
// registration order.
func (a *Application) OnShutdown(name string, fn func(ctx context.Context) error) {
	a.shutdownHooks = append(a.shutdownHooks, shutdownHook{name: name, fn: fn})
}

// Handler exposes the fully wired handler, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) setHealthHandler(db health.Pinger) {
	healthRouter := httprouter.New()
	health.NewHandler(db, a.cfg.Log).RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.CORS(a.cfg.CORSAllowedOrigins)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery, CORS and Logging)")
}

func (a *Application) setAppHandler(handlers []contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}
	appRouter.NotFound = http.HandlerFunc(notFound)
	appRouter.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		a.cfg.Log,
	)

	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.Idempotency(a.idempotencyStore)(appHTTPHandler)
	appHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.RateLimit(a.rateLimiter)(appHTTPHandler)
	appHTTPHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.CORS(a.cfg.CORSAllowedOrigins)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(a.cfg.Log)(appHTTPHandler)
	a.appHTTPHandler = appHTTPHandler
	a.cfg.Log.Info("Application endpoints configured", "handlers", len(handlers))
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/{$}", a.healthHandler)
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHTTPHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteError(w, apperrors.NotFound("Route "+r.URL.Path))
}

// methodNotAllowed runs after httprouter has set the Allow header.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = httputil.WriteError(w, apperrors.MethodNotAllowed(r.Method, r.URL.Path))
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Error("HTTP server failed", "error", err)
		}
		a.stopBackground()
		a.runShutdownHooks()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.cfg.Log.Fatal("HTTP server stopped unexpectedly", "error", err)
		}

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig.String())
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.stopBackground()
	a.runShutdownHooks()

	a.cfg.Log.Info("Server stopped gracefully")
}

func (a *Application) stopBackground() {
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
}

func (a *Application) runShutdownHooks() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	for _, hook := range a.shutdownHooks {
		if err := hook.fn(ctx); err != nil {
			a.cfg.Log.Error("Shutdown step failed", "step", hook.name, "error", err)
			continue
		}
		a.cfg.Log.Info("Shutdown step completed", "step", hook.name)
	}
}
