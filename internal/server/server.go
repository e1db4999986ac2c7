// Package server exposes the selection engine over a read-only HTTP API.
// Every request carries its selection as a share query, so no state is
// kept between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/contract"
	"github.com/huangsam/armory/internal/outwriter"
	"github.com/huangsam/armory/schema"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Query parameters that are not part of the share query.
const (
	paramSearch = "q"
	paramChart  = "chart"
	paramRandom = "random"
)

// Options configures a Server.
type Options struct {
	Addr        string
	BaseURL     string
	RandomCount int
	Seed        uint64
	RateLimit   float64 // requests per second, <= 0 disables limiting
	RateBurst   int
	Version     string
}

// OptionsFromConfig maps the validated CLI config onto server options.
func OptionsFromConfig(cfg *contract.Config, version string) Options {
	return Options{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		RandomCount: cfg.RandomCount,
		Seed:        cfg.Seed,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
		Version:     version,
	}
}

// Server is the armory HTTP server.
type Server struct {
	httpServer *http.Server
	engine     *core.Engine
	opts       Options
	logger     *zap.Logger
	mux        *http.ServeMux
	limiter    *rate.Limiter
	metrics    *metrics
}

// New creates a new Server instance.
func New(eng *core.Engine, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Addr == "" {
		opts.Addr = contract.DefaultAddr
	}
	if opts.BaseURL == "" {
		opts.BaseURL = contract.DefaultBaseURL
	}

	s := &Server{
		engine:  eng,
		opts:    opts,
		logger:  logger,
		mux:     http.NewServeMux(),
		metrics: newMetrics(),
	}
	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(1, opts.RateBurst))
	}
	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.registerRoutes()
	return s
}

// registerRoutes sets up every route of the API.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/weapons", s.handleWeapons)
	s.mux.HandleFunc("GET /api/v1/categories", s.handleCategories)
	s.mux.HandleFunc("GET /api/v1/charts", s.handleCharts)
	s.mux.HandleFunc("GET /api/v1/share", s.handleShare)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		NotFound(w, "no route for "+r.Method+" "+r.URL.Path, r.URL.Path)
	})
}

// Handler returns the mux wrapped with rate limiting, metrics and logging.
func (s *Server) Handler() http.Handler {
	return s.instrument(s.rateLimit(s.mux))
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is done, then shuts down within the grace period.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return <-errCh
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"service": "armory",
		"version": s.opts.Version,
		"weapons": s.engine.Catalog.Len(),
	})
}

type weaponResponse struct {
	Name       string            `json:"name"`
	DamageType schema.DamageType `json:"damage_type"`
}

// handleWeapons lists the weapons matching ?q= that the share query has not selected.
func (s *Server) handleWeapons(w http.ResponseWriter, r *http.Request) {
	sel := core.Decode(s.engine.Catalog, core.ParseQuery(r.URL.RawQuery))
	found := core.Search(s.engine.Catalog, r.URL.Query().Get(paramSearch), sel)

	out := make([]weaponResponse, 0, len(found))
	for _, weapon := range found {
		out = append(out, weaponResponse{Name: weapon.Name, DamageType: weapon.DamageType})
	}
	writeJSON(w, out)
}

type categoryResponse struct {
	Category schema.Category `json:"category"`
	Group    string          `json:"group"`
	Unit     schema.Unit     `json:"unit"`
	Bonus    bool            `json:"bonus"`
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	out := make([]categoryResponse, 0, len(schema.AllCategories))
	for _, c := range schema.AllCategories {
		out = append(out, categoryResponse{Category: c, Group: c.Group().String(), Unit: c.Unit(), Bonus: c.HasBonus()})
	}
	writeJSON(w, out)
}

// handleCharts restores the share query and returns its charts.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	chart := r.URL.Query().Get(paramChart)
	switch chart {
	case "":
		chart = contract.ChartAll
	case contract.ChartAll, contract.ChartRadar, contract.ChartBar:
	default:
		BadRequest(w, fmt.Sprintf("invalid chart %q. must be all, radar or bar", chart), r.URL.Path)
		return
	}
	sel, ok := s.restore(w, r)
	if !ok {
		return
	}
	view := s.engine.Render(sel, s.opts.BaseURL)
	s.metrics.views.Inc()
	writeJSON(w, outwriter.NewViewReport(view, outwriter.SelectCharts(view, chart)))
}

// handleShare restores the share query and returns its canonical form.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.restore(w, r)
	if !ok {
		return
	}
	link, err := core.ShareLink(s.opts.BaseURL, sel)
	if err != nil {
		InternalError(w, err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, map[string]string{
		"query": core.EncodeQuery(core.Encode(sel)),
		"link":  link,
	})
}

// restore decodes the request query with the load-time fallbacks. ?random=N
// overrides the number of random weapons picked when none survive.
func (s *Server) restore(w http.ResponseWriter, r *http.Request) (*core.Selection, bool) {
	n := s.opts.RandomCount
	if raw := r.URL.Query().Get(paramRandom); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			BadRequest(w, fmt.Sprintf("invalid random %q. must be a non-negative integer", raw), r.URL.Path)
			return nil, false
		}
		n = v
	}
	return s.engine.Restore(core.ParseQuery(r.URL.RawQuery), n, s.opts.Seed, false), true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
