// Package web serves the dashboard page and its chart endpoints over HTTP.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/huangsam/shotdash/internal/contract"
	"github.com/huangsam/shotdash/internal/render"
	"github.com/huangsam/shotdash/schema"
)

// ShutdownTimeout bounds graceful shutdown once the serve context is cancelled.
const ShutdownTimeout = 5 * time.Second

// Config holds server options.
type Config struct {
	Logger   *slog.Logger // nil means slog.Default()
	PlotlyJS string       // script URL for plotly.js
}

// DefaultPlotlyJS is the plotly.js bundle loaded by the page.
const DefaultPlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Server is the dashboard HTTP handler.
type Server struct {
	provider contract.ChartProvider
	layout   schema.PageLayout
	page     templ.Component
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewServer builds the routes for the given chart provider and page layout.
func NewServer(provider contract.ChartProvider, layout schema.PageLayout, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PlotlyJS == "" {
		cfg.PlotlyJS = DefaultPlotlyJS
	}
	intro, err := RenderMarkdown(layout.Intro)
	if err != nil {
		logger.Error("Failed to render intro markdown", "error", err)
		intro = "<pre>" + templ.EscapeString(layout.Intro) + "</pre>"
	}

	s := &Server{
		provider: provider,
		layout:   layout,
		page:     Page(layout, intro, cfg.PlotlyJS),
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/api/groups", s.groupsHandler)
	s.mux.HandleFunc("/api/chart", s.chartHandler)
	s.mux.HandleFunc("/chart.svg", s.imageHandler("image/svg+xml", render.SVG))
	s.mux.HandleFunc("/chart.png", s.imageHandler("image/png", render.PNG))
	s.mux.HandleFunc("/healthz", healthCheckHandler)
	return s
}

// ServeHTTP logs the request and rejects every method other than GET.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	if r.Method != http.MethodGet {
		rec.Header().Set("Allow", http.MethodGet)
		http.Error(rec, "Only GET allowed", http.StatusMethodNotAllowed)
	} else {
		s.mux.ServeHTTP(rec, r)
	}
	s.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(s.page).ServeHTTP(w, r)
}

func (s *Server) groupsHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.provider.Options())
}

// chartHandler is the update protocol: the selected value in, the figure out.
func (s *Server) chartHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.provider.Update(s.group(r)))
}

func (s *Server) imageHandler(contentType string, draw func(io.Writer, schema.ChartSpec) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group := s.group(r)
		var buf bytes.Buffer
		if err := draw(&buf, s.provider.Update(group)); err != nil {
			s.logger.Error("Failed to render chart", "group", group, "type", contentType, "error", err)
			http.Error(w, "Failed to render chart", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = buf.WriteTo(w)
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// group reads the selected value, falling back to the page default.
func (s *Server) group(r *http.Request) string {
	if g := r.URL.Query().Get("group"); g != "" {
		return g
	}
	return s.layout.Dropdown.Default
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode response", "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Run serves the dashboard on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
