// Package web serves the calculators as HTML pages and a JSON API.
package web

import (
	"bytes"
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/etnz/fincalc/docs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the web shell of the calculators. It holds no calculator state:
// every request builds its own sheet or planner.
type Server struct {
	http.Server
	pages *template.Template
	md     goldmark.Markdown
	topics []docs.Topic
	log    *slog.Logger
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(cfg Config, logger *slog.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:           cfg.Addr,
			Handler:        mux,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: 1 << 16,
		},
		pages: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		log:   logger,
	}
	topics, err := docs.GetIndex()
	if err != nil {
		// embedded topics are checked by the docs tests.
		panic(err)
	}
	s.topics = topics

	mux.HandleFunc("GET /{$}", s.withSecurityHeaders(s.handleHome))
	mux.HandleFunc("GET /docs/{topic}", s.withSecurityHeaders(s.handleTopic))
	mux.HandleFunc("GET /net-worth", s.withSecurityHeaders(s.handleNetWorth))
	mux.HandleFunc("GET /sip-calculator", s.withSecurityHeaders(s.handleSIP))
	mux.HandleFunc("GET /api/net-worth", s.withSecurityHeaders(s.handleNetWorthQuery))
	mux.HandleFunc("POST /api/net-worth", s.withSecurityHeaders(s.handleNetWorthBody))
	mux.HandleFunc("GET /api/sip", s.withSecurityHeaders(s.handleSIPQuery))
	mux.HandleFunc("GET /healthz", handleHealth)
	return s
}

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the id given to the request by the server, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// withSecurityHeaders adds security headers and request logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		s.log.DebugContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"user_agent", r.Header.Get("User-Agent"))

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("X-Request-ID", requestID)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.log.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(b)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// page is the data of every HTML page.
type page struct {
	Title  string
	Path   string
	Topics []docs.Topic
	Form   any
	Report template.HTML
}

// render converts a markdown report and executes the named page template.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, p page, report string) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(report), &buf); err != nil {
		s.log.ErrorContext(r.Context(), "Markdown conversion failed", "error", err, "template", name)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	// goldmark escapes raw HTML found in the markdown.
	p.Report = template.HTML(buf.String())
	p.Path = r.URL.Path
	p.Topics = s.topics

	var out bytes.Buffer
	if err := s.pages.ExecuteTemplate(&out, name, p); err != nil {
		s.log.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = out.WriteTo(w)
}
