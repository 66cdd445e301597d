package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
	"github.com/aretw0/sortscope/pkg/ports"
	"github.com/aretw0/sortscope/pkg/runner"
)

// maxBodyBytes bounds POST /sort request bodies.
const maxBodyBytes = 1 << 20

// DefaultSize is the length of a generated array when a request sends no values.
const DefaultSize = 50

// Engine defines the engine surface served over HTTP.
type Engine interface {
	ports.SortEngine
}

// Server serves the catalog and sort runs.
type Server struct {
	Engine  Engine
	Limits  generator.Limits
	Logger  *slog.Logger
	Version string
	Metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLimits bounds request inputs.
func WithLimits(l generator.Limits) Option {
	return func(s *Server) {
		s.Limits = l
	}
}

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine:  engine,
		Limits:  generator.DefaultLimits,
		Logger:  slog.New(slog.DiscardHandler),
		Version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/algorithms", s.ListAlgorithms)
	r.Get("/algorithms/{id}", s.GetAlgorithm)
	r.Post("/sort", s.Sort)
	r.Get("/sort/stream", s.StreamSort)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":        "sortscope-http",
		"version":    strings.TrimSpace(s.Version),
		"algorithms": len(s.Engine.Catalog()),
	})
}

// ListAlgorithms handles GET /algorithms, optionally filtered by ?category=.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	all := s.Engine.Catalog()
	out := make([]domain.Descriptor, 0, len(all))
	for _, d := range all {
		if category == "" || d.Category == category {
			out = append(out, d)
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetAlgorithm handles GET /algorithms/{id}.
func (s *Server) GetAlgorithm(w http.ResponseWriter, r *http.Request) {
	d, err := s.Engine.Describe(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAlgorithm) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

// SortRequest is the body of POST /sort. Without Values, Size random
// values are generated from Seed.
type SortRequest struct {
	Algorithm string `json:"algorithm"`
	Values    []int  `json:"values,omitempty"`
	Size      int    `json:"size,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
}

// SortResponse is the result of a run. Steps is omitted with ?steps=false.
type SortResponse struct {
	Algorithm domain.AlgorithmID `json:"algorithm"`
	Requested string             `json:"requested"`
	Fallback  bool               `json:"fallback"`
	Input     []domain.Element   `json:"input"`
	Final     []domain.Element   `json:"final"`
	Stats     domain.Stats       `json:"stats"`
	StepCount int                `json:"step_count"`
	Steps     []domain.Step      `json:"steps,omitempty"`
}

// Sort handles the POST /sort request.
func (s *Server) Sort(w http.ResponseWriter, r *http.Request) {
	var body SortRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Sort: Invalid request body", "error", err)
		return
	}

	input, err := s.input(body.Values, body.Size, body.Seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.Logger.Warn("Sort: Input rejected", "error", err)
		return
	}

	res := s.Engine.Run(r.Context(), body.Algorithm, input)
	resp := SortResponse{
		Algorithm: res.Algorithm,
		Requested: res.Requested,
		Fallback:  res.Fallback,
		Input:     input,
		Final:     res.Final,
		Stats:     res.Stats,
		StepCount: len(res.Steps),
	}
	if r.URL.Query().Get("steps") != "false" {
		resp.Steps = res.Steps
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) input(values []int, size int, seed uint64) ([]domain.Element, error) {
	if len(values) > 0 {
		if err := s.Limits.Check(values); err != nil {
			return nil, err
		}
		return generator.FromValues(values), nil
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 || (s.Limits.MaxElements > 0 && size > s.Limits.MaxElements) {
		return nil, fmt.Errorf("%w: size %d", domain.ErrTooManyElements, size)
	}
	return generator.Random(generator.NewRand(seed), size, generator.DefaultMinValue, generator.DefaultMaxValue), nil
}

// StreamSort handles GET /sort/stream (SSE). It runs the algorithm and replays
// every step as an event at ?interval= (milliseconds or a Go duration).
func (s *Server) StreamSort(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("StreamSort: Streaming not supported")
		return
	}

	q := r.URL.Query()
	values, err := generator.ParseValues(q.Get("values"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	size, _ := strconv.Atoi(q.Get("size"))
	seed, _ := strconv.ParseUint(q.Get("seed"), 10, 64)
	input, err := s.input(values, size, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	interval, err := parseInterval(q.Get("interval"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := s.Engine.Run(r.Context(), q.Get("algorithm"), input)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: %s\n\n", res.Algorithm)
	flusher.Flush()

	player := runner.NewPlayer(
		runner.WithInterval(interval),
		runner.WithHandler(&sseHandler{w: w, flusher: flusher, compact: q.Get("compact") == "true"}),
		runner.WithLogger(s.Logger),
	)
	if _, err := player.Play(r.Context(), res.Steps); err != nil && !errors.Is(err, context.Canceled) {
		s.Logger.Error("StreamSort: playback failed", "error", err)
	}
}

func parseInterval(s string) (time.Duration, error) {
	if s == "" {
		return runner.DefaultInterval, nil
	}
	var d time.Duration
	if n, err := strconv.Atoi(s); err == nil {
		d = time.Duration(n) * time.Millisecond
	} else if d, err = time.ParseDuration(s); err != nil {
		return 0, fmt.Errorf("invalid interval %q", s)
	}
	if d < 0 || d > runner.MaxInterval {
		return 0, fmt.Errorf("interval must be between 0 and %s", runner.MaxInterval)
	}
	return d, nil
}

// sseHandler writes frames as server-sent events.
type sseHandler struct {
	w       http.ResponseWriter
	flusher http.Flusher
	compact bool
}

func (h *sseHandler) Frame(ctx context.Context, f runner.Frame) error {
	var payload any = f.Step
	event := runner.FrameTypeStep
	if h.compact && f.Prev != nil {
		payload = domain.Diff(f.Index, f.Prev, &f.Step)
		event = runner.FrameTypeDiff
	}
	return h.send(event, payload)
}

func (h *sseHandler) Done(ctx context.Context, s runner.Summary) error {
	return h.send(runner.FrameTypeDone, runner.JSONFrame{
		Type:      runner.FrameTypeDone,
		Total:     s.Total,
		Frames:    s.Frames,
		Completed: s.Completed,
		Stats:     &s.Stats,
	})
}

func (h *sseHandler) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(h.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	h.flusher.Flush()
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
