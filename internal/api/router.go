package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/jarvis-home/eventlog/internal/api/handlers"
	"github.com/jarvis-home/eventlog/internal/api/middleware"
	"github.com/jarvis-home/eventlog/internal/config"
	"github.com/jarvis-home/eventlog/internal/domain/events"
	"github.com/jarvis-home/eventlog/internal/metrics"
	"github.com/jarvis-home/eventlog/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires the HTTP surface: the events API behind the gateway
// middleware chain, plus the operational endpoints, which skip auth and
// rate limiting so probes and scrapes keep working under load.
func NewRouter(cfg config.Config, logger zerolog.Logger, repo storage.Repository, db handlers.Pinger) http.Handler {
	writer := events.NewWriteService(repo.Events())
	reader := events.NewReadService(repo.Events())
	eventsHandler := handlers.NewEventsHandler(writer, reader)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(db))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	guarded := chain(
		middleware.RequestSize(middleware.MaxBodySize),
		middleware.RateLimit(cfg.RateLimit),
		middleware.APIKey(cfg.Auth.APIKey),
		middleware.BasicAuth(cfg),
	)

	mux.Handle("/api/v1/events", guarded(methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: http.HandlerFunc(eventsHandler.Create),
	})))

	outer := chain(
		middleware.CorrelationID(logger),
		middleware.RequestLogging(logger),
		metrics.HTTPMiddleware,
		middleware.Tracing,
	)
	return outer(mux)
}

// chain composes middleware so the first argument is the outermost wrapper.
func chain(wrappers ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(wrappers) - 1; i >= 0; i-- {
			next = wrappers[i](next)
		}
		return next
	}
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
