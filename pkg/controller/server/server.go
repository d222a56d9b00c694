package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/asaleem9/folio/pkg/domain/interfaces"
	"github.com/asaleem9/folio/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMaxBodySize = 64 * 1024

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response body is JSON encoded by writeJSON or a constant
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		code = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

type config struct {
	metricsHandler http.Handler
	maxBodySize    int64
}

type Option func(*config)

// WithMetricsHandler replaces the handler served on /metrics. nil removes the route.
func WithMetricsHandler(h http.Handler) Option {
	return func(cfg *config) {
		cfg.metricsHandler = h
	}
}

// WithMaxBodySize limits the size of request bodies accepted by POST routes.
func WithMaxBodySize(n int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = n
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		metricsHandler: promhttp.Handler(),
		maxBodySize:    defaultMaxBodySize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Use(robotsTag)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metricsHandler)
	}
	r.Route("/api", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Get("/", listRepositories(uc))
			r.Get("/languages", listRepositoryLanguages(uc))
		})
		r.Get("/medium", listArticles(uc))
		r.Post("/contact", sendContact(uc, cfg.maxBodySize))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
