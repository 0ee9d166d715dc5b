package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bastiangx/assetserve/internal/logger"
	"github.com/bastiangx/assetserve/pkg/present"
	"github.com/bastiangx/assetserve/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// HTTPOptions configures the listener and response headers.
type HTTPOptions struct {
	Addr        string
	Port        int // 0 picks a free port
	AllowOrigin string
	ReadTimeout time.Duration
}

// HTTPServer serves the JSON API.
type HTTPServer struct {
	searcher search.Searcher
	opts     HTTPOptions
	reqLog   *log.Logger
	listener net.Listener
	httpSrv  *http.Server
	stopOnce sync.Once
}

// NewHTTPServer creates an HTTP server over searcher. An empty AllowOrigin
// becomes "*".
func NewHTTPServer(searcher search.Searcher, opts HTTPOptions) *HTTPServer {
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "*"
	}
	return &HTTPServer{
		searcher: searcher,
		opts:     opts,
		reqLog:   logger.New("http"),
	}
}

// Handler returns the routed API wrapped in request logging.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/recommend", s.handleRecommend)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("/", s.handleNotFound)
	return withRequestLog(s.reqLog, mux)
}

// Listen binds the configured address.
func (s *HTTPServer) Listen() error {
	addr := net.JoinHostPort(s.opts.Addr, fmt.Sprintf("%d", s.opts.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.httpSrv = &http.Server{
		Handler:     s.Handler(),
		ReadTimeout: s.opts.ReadTimeout,
	}
	return nil
}

// Serve blocks until ctx is done or the listener fails, then shuts down.
func (s *HTTPServer) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("serve called before listen")
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.Serve(s.listener)
	}()

	log.Infof("Listening on %s", s.URL())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		s.Stop()
		return nil
	}
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *HTTPServer) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			log.Warnf("HTTP shutdown: %v", err)
		}
		log.Debug("HTTP server stopped")
	})
}

// URL returns the base URL of the bound listener.
func (s *HTTPServer) URL() string {
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results := s.searcher.Search(q.Get("q"), q.Get("type"))
	s.writeJSON(w, present.Assets(results, s.searcher))
}

func (s *HTTPServer) handleRecommend(w http.ResponseWriter, r *http.Request) {
	results := s.searcher.Recommend(r.URL.Query().Get("type"))
	s.writeJSON(w, present.Assets(results, s.searcher))
}

func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, present.Stats(s.searcher.Stats()))
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, present.HealthView{Status: "ok", Assets: s.searcher.Stats().Total})
}

func (s *HTTPServer) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, present.NotFound)
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", s.opts.AllowOrigin)

	body, err := present.Encode(v)
	if err != nil {
		log.Errorf("Encoding response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		body = `{"error":"Internal server error"}`
	}
	if _, err := w.Write([]byte(body)); err != nil {
		log.Debugf("Writing response: %v", err)
	}
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags each request with an X-Request-ID and logs it once
// the handler returns.
func withRequestLog(l *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		l.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}
