package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	appanalyses "github.com/bryanwahyu/textlens/internal/application/analyses"
	domai "github.com/bryanwahyu/textlens/internal/domain/ai"
	domain "github.com/bryanwahyu/textlens/internal/domain/analysis"
	"github.com/bryanwahyu/textlens/internal/middleware"
)

type Router struct {
	svc *appanalyses.Service
}

func NewRouter(svc *appanalyses.Service, corsOrigins []string) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	origins := corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/health", r.handleHealth)
		rt.Get("/metrics", middleware.MetricsHandler)

		rt.Get("/analyze", r.wrap(r.handleRead))
		rt.Post("/analyze", r.wrap(r.handleCreate))
		rt.Put("/analyze", r.wrap(r.handleUpdate))
		rt.Delete("/analyze", r.wrap(r.handleDelete))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap translates the error taxonomy into HTTP statuses with JSON bodies.
// Nothing escapes as an unhandled fault.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var nf *notFoundError
		var verrs validation.Errors
		switch {
		case errors.As(err, &nf):
			writeError(w, http.StatusNotFound, nf.Error(), nil)
		case errors.As(err, &verrs):
			writeError(w, http.StatusBadRequest, verrs.Error(), nil)
		case errors.Is(err, domain.ErrEmptyText), errors.Is(err, domain.ErrMissingID):
			writeError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domai.ErrMissingAPIKey):
			slog.Error("ai credential missing", slog.String("path", req.URL.Path))
			writeError(w, http.StatusInternalServerError, "AI provider credential is not configured.", err)
		case errors.Is(err, domai.ErrQuotaExceeded):
			writeError(w, http.StatusTooManyRequests, "AI provider quota exceeded.", err)
		case domai.IsSchemaError(err):
			slog.Error("ai schema violation", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "AI provider returned an unusable response.", err)
		default:
			slog.Error("request failed",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Analysis request failed.", err)
		}
	}
}

// notFoundError carries the requested id so the response message can name it.
type notFoundError struct {
	id string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("Analysis with id %s not found.", e.id)
}

func (e *notFoundError) Is(target error) bool { return target == domain.ErrNotFound }

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
