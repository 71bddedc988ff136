package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octosearch/pkg/controller/flow"
	"github.com/m-mizutani/octosearch/pkg/domain/interfaces"
	"github.com/m-mizutani/octosearch/pkg/domain/types"
	"github.com/m-mizutani/octosearch/pkg/utils/errutil"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

type Server struct {
	mux    *chi.Mux
	signIn *flow.SignIn
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON or a fixed text
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"fail to encode response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidQuery),
		errors.Is(err, types.ErrMissingLoginData),
		errors.Is(err, types.ErrMissingCode),
		errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnauthenticated),
		errors.Is(err, types.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, types.ErrNetwork):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if r.Context().Err() != nil {
		logging.From(r.Context()).Debug("request canceled", "error", err)
		return
	}

	code := statusCodeOf(err)
	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Info(msg, "error", err, "status_code", code)
	}

	writeJSON(w, code, errorResponse{Error: flow.Message(err)})
}

type config struct {
	loc    *time.Location
	signIn *flow.SignIn
}

type Option func(*config)

// WithLocation sets the time zone of dates in repository views. Default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(cfg *config) {
		cfg.loc = loc
	}
}

// WithSignIn shares a sign-in flow with the caller, e.g. a CLI waiting for the callback
func WithSignIn(f *flow.SignIn) Option {
	return func(cfg *config) {
		cfg.signIn = f
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		loc: time.UTC,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.signIn == nil {
		cfg.signIn = flow.NewSignIn(uc)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/signin", handleSignIn(cfg.signIn))
		r.Get("/status", handleSignInStatus(cfg.signIn))
	})
	r.Get("/oauth/callback", handleOAuthCallback(cfg.signIn))

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", handleSearch(uc))
		r.Get("/repos/{owner}/{name}", handleGetRepository(uc, cfg.loc))
		r.Route("/history", func(r chi.Router) {
			r.Get("/", handleListHistory(uc))
			r.Post("/", handleRecordHistory(uc))
			r.Delete("/", handleClearHistory(uc))
			r.Get("/stream", handleStreamHistory(uc))
		})
	})

	return &Server{
		mux:    r,
		signIn: cfg.signIn,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// SignIn returns the sign-in flow driven by /auth/signin and /oauth/callback
func (x *Server) SignIn() *flow.SignIn {
	return x.signIn
}
