package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/howto"
	"github.com/google/uuid"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before shutdown.
const ShutdownTimeout = 5 * time.Second

// maxBodySize limits JSON request bodies.
const maxBodySize = 1 << 20

// Server exposes howto.Service and howto.Prompter as a JSON API.
type Server struct {
	server  *http.Server
	router  *http.ServeMux
	handler http.Handler

	// Services used by the HTTP routes. Prompter may be nil.
	HowTo    howto.Service
	Prompter howto.Prompter

	Logger *slog.Logger
}

// NewServer returns a new instance of Server listening on addr once
// ListenAndServe is called.
func NewServer(addr string) *Server {
	s := &Server{
		router: http.NewServeMux(),
		Logger: slog.New(slog.DiscardHandler),
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleFunc("GET /api/hello", s.handleHello)
	s.router.HandleFunc("POST /api/scrape-wikihow", s.handleScrape)
	s.router.HandleFunc("POST /api/openai", s.handlePrompt)
	s.handler = s.trace(cors(s.router))

	return s
}

// ServeHTTP handles a request with request ID, logging and CORS handling
// around the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves until Close is called. A closed server is not an error.
func (s *Server) ListenAndServe() error {
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type helloResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, &helloResponse{Message: "Hello from howto!"})
}

type scrapeRequest struct {
	Query string `json:"query"`
}

type scrapeResponse struct {
	*howto.Document
	Status string `json:"status"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := decode(w, r, &req); err != nil {
		s.Error(w, r, err)
		return
	}

	doc, err := s.HowTo.HowTo(r.Context(), req.Query)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &scrapeResponse{Document: doc, Status: "success"})
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type promptResponse struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Status   string `json:"status"`
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decode(w, r, &req); err != nil {
		s.Error(w, r, err)
		return
	}
	if req.Prompt == "" {
		s.Error(w, r, howto.Errorf(howto.EINVALID, "no prompt provided"))
		return
	}
	if s.Prompter == nil {
		s.Error(w, r, howto.Errorf(howto.EINTERNAL, "prompt provider not configured"))
		return
	}

	answer, err := s.Prompter.Prompt(r.Context(), req.Prompt)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &promptResponse{Prompt: req.Prompt, Response: answer, Status: "success"})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response with the status for its code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := howto.ErrorCode(err), howto.ErrorMessage(err)

	if code == howto.EINTERNAL {
		s.Logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}

	s.writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	howto.EINVALID:      http.StatusBadRequest,
	howto.ENOTFOUND:     http.StatusNotFound,
	howto.ETIMEOUT:      http.StatusGatewayTimeout,
	howto.ENETWORK:      http.StatusInternalServerError,
	howto.EEXTRACT:      http.StatusInternalServerError,
	howto.EINTERNAL:     http.StatusInternalServerError,
	howto.EUNAUTHORIZED: http.StatusUnauthorized,
	howto.ERATELIMIT:    http.StatusTooManyRequests,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return howto.Errorf(howto.EINVALID, "invalid JSON body")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("write response", "err", err)
	}
}

// trace tags each request with an ID and logs it once it completes.
func (s *Server) trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.Logger.Info("http request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(rec, r)
	})
}

// cors allows browser clients on any origin and answers preflight requests.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
