package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/internal/runner"
	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/httpserver"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/requestid"
)

// Reader is the read side of a benchmark run.
type Reader interface {
	Providers(ctx context.Context) ([]store.ProviderRecord, error)
	Summary(ctx context.Context) (runner.Summary, error)
	UserAgentEvaluations(ctx context.Context, id uuid.UUID) (store.UserAgent, []store.UserAgentEvaluationRecord, error)
}

type handler struct {
	reader Reader
	log    *slog.Logger
}

// Option configures the router.
type Option func(*options)

type options struct {
	log          *slog.Logger
	checks       map[string]httpserver.Check
	checkTimeout time.Duration
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithHealthCheck adds a named readiness check to /health.
func WithHealthCheck(name string, check httpserver.Check) Option {
	return func(o *options) {
		o.checks[name] = check
	}
}

// Router builds the API routes over reader.
func Router(reader Reader, opts ...Option) chi.Router {
	o := &options{
		log:          slog.Default(),
		checks:       make(map[string]httpserver.Check),
		checkTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	h := &handler{reader: reader, log: o.log.With(logger.Component("api"))}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/health", httpserver.HealthHandler(h.log, o.checkTimeout, o.checks))
	r.Get("/providers", h.providers)
	r.Get("/summary", h.summary)
	r.Route("/user-agents/{id}", func(r chi.Router) {
		r.Get("/evaluations", h.userAgentEvaluations)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func (h *handler) providers(w http.ResponseWriter, r *http.Request) {
	providers, err := h.reader.Providers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: providers, Meta: map[string]int{"total": len(providers)}})
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reader.Summary(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: summary})
}

type userAgentEvaluations struct {
	UserAgent   store.UserAgent                   `json:"user_agent"`
	Evaluations []store.UserAgentEvaluationRecord `json:"evaluations"`
}

func (h *handler) userAgentEvaluations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "user agent id must be a UUID")
		return
	}

	ua, evals, err := h.reader.UserAgentEvaluations(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "user agent not found")
		return
	case err != nil:
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: userAgentEvaluations{UserAgent: ua, Evaluations: evals}})
}

func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		logger.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
