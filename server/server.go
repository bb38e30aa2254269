package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/chatradar/chatradar/pkg/broadcast"
	"github.com/chatradar/chatradar/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/mentions.go -pkg mocks -skip-ensure -fmt goimports . MentionStore
//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry
//go:generate moq -out mocks/scanner.go -pkg mocks -skip-ensure -fmt goimports . StatusReporter

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	mentions MentionStore
	registry Registry
	scanners []StatusReporter
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// MentionStore interface for mention queries and flag updates
type MentionStore interface {
	List(ctx context.Context, tenantID int64, limit int) ([]*domain.Mention, error)
	CountUnread(ctx context.Context, tenantID int64) (int, error)
	SetRead(ctx context.Context, id int64, read bool) error
	SetLead(ctx context.Context, id int64, lead bool) error
}

// Registry accepts live websocket connections partitioned by tenant
type Registry interface {
	Register(tenantID int64, client broadcast.Client) string
	Unregister(tenantID int64, connID string)
}

// StatusReporter exposes a scanner's operational state
type StatusReporter interface {
	Status() domain.ScannerStatus
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, mentions MentionStore, registry Registry, scanners []StatusReporter, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		mentions: mentions,
		registry: registry,
		scanners: scanners,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("chatradar", "chatradar", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /mentions", s.mentionsHandler)
		r.HandleFunc("POST /mentions/{id}/read", s.setReadHandler)
		r.HandleFunc("POST /mentions/{id}/lead", s.setLeadHandler)
	})

	s.router.HandleFunc("GET /ws", s.websocketHandler)
}

// statusHandler returns server status including per-scanner state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	scanners := make([]domain.ScannerStatus, 0, len(s.scanners))
	for _, sc := range s.scanners {
		scanners = append(scanners, sc.Status())
	}

	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"scanners": scanners,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// mentionsHandler returns the tenant's newest mentions as dashboard payloads
func (s *Server) mentionsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantParam(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 || limit > 500 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
	}

	mentions, err := s.mentions.List(r.Context(), tenantID, limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list mentions for tenant %d: %v", tenantID, err)
		RenderError(w, r, fmt.Errorf("failed to list mentions"), http.StatusInternalServerError)
		return
	}

	unread, err := s.mentions.CountUnread(r.Context(), tenantID)
	if err != nil {
		lgr.Printf("[ERROR] failed to count unread mentions for tenant %d: %v", tenantID, err)
		RenderError(w, r, fmt.Errorf("failed to list mentions"), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	payloads := make([]domain.MentionPayload, len(mentions))
	for i, m := range mentions {
		payloads[i] = domain.NewMentionPayload(m, now)
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"mentions": payloads, "unread": unread})
}

func (s *Server) setReadHandler(w http.ResponseWriter, r *http.Request) {
	s.setFlagHandler(w, r, s.mentions.SetRead)
}

func (s *Server) setLeadHandler(w http.ResponseWriter, r *http.Request) {
	s.setFlagHandler(w, r, s.mentions.SetLead)
}

// setFlagHandler updates a boolean mention flag, body is {"value": bool},
// missing body defaults to true
func (s *Server) setFlagHandler(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, id int64, value bool) error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid mention id"), http.StatusBadRequest)
		return
	}

	value := true
	if r.Body != nil && r.ContentLength > 0 {
		var body struct {
			Value bool `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
			return
		}
		value = body.Value
	}

	if err := update(r.Context(), id, value); err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "value": value})
}

// tenantParam extracts the required tenant query parameter
func tenantParam(r *http.Request) (int64, error) {
	v := r.URL.Query().Get("tenant")
	if v == "" {
		return 0, fmt.Errorf("tenant parameter required")
	}
	tenantID, err := strconv.ParseInt(v, 10, 64)
	if err != nil || tenantID <= 0 {
		return 0, fmt.Errorf("invalid tenant %q", v)
	}
	return tenantID, nil
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
