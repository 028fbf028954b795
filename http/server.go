package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/vidlinks"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server shuts down.
const ShutdownTimeout = 10 * time.Second

var setGinMode sync.Once

// Server exposes an ExtractionService over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	engine *gin.Engine

	// Addr is the bind address, e.g. ":5000". Set before calling Open().
	Addr string

	// Service produces the enriched links. Required.
	Service vidlinks.ExtractionService

	Logger *slog.Logger
}

// serverConfig holds optional server features.
type serverConfig struct {
	allowOrigins []string
	metrics      http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

// WithCORS allows cross-origin requests from the given origins.
// A single "*" allows every origin.
func WithCORS(origins ...string) ServerOption {
	return func(c *serverConfig) {
		c.allowOrigins = origins
	}
}

// WithMetrics serves h on GET /metrics.
func WithMetrics(h http.Handler) ServerOption {
	return func(c *serverConfig) {
		c.metrics = h
	}
}

// NewServer returns a new Server with routes registered.
func NewServer(service vidlinks.ExtractionService, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var cfg serverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	setGinMode.Do(func() { gin.SetMode(gin.ReleaseMode) })
	engine := gin.New()
	engine.Use(gin.Recovery())
	if len(cfg.allowOrigins) > 0 {
		engine.Use(cors.New(corsConfig(cfg.allowOrigins)))
	}

	s := &Server{
		engine:  engine,
		Service: service,
		Logger:  logger,
	}
	s.server = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	engine.GET("/health", s.handleHealth)
	engine.POST("/extract", s.handleExtract)
	if cfg.metrics != nil {
		engine.GET("/metrics", gin.WrapH(cfg.metrics))
	}

	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Open begins listening on the bind address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Type"}
	return config
}

// extractRequest is the JSON body of POST /extract.
type extractRequest struct {
	URL    string `json:"url"`
	APIKey string `json:"api_key"`
}

// errorResponse is returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleExtract(c *gin.Context) {
	var body extractRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No URL provided"})
		return
	}

	result, err := s.Service.Extract(c.Request.Context(), &vidlinks.Request{
		SourceURL:  body.URL,
		Credential: body.APIKey,
	})
	if err != nil {
		s.Logger.Error("extract failed", "url", body.URL, "err", err)
		c.JSON(errorStatusCode(err), errorResponse{Error: vidlinks.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// errorStatusCode maps application error codes to HTTP status codes.
func errorStatusCode(err error) int {
	switch vidlinks.ErrorCode(err) {
	case vidlinks.EINVALID:
		return http.StatusBadRequest
	case vidlinks.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
