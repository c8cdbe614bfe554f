package httpapi

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"codescope/src/config"
)

// Server exposes the analysis engine over REST
type Server struct {
	cfg     *config.Config
	router  *gin.Engine
	started time.Time

	// In-process counters. These are real measurements, never synthetic.
	analysesRun   atomic.Int64
	filesAnalyzed atomic.Int64
	findingsFound atomic.Int64
	clonesFound   atomic.Int64
}

// NewServer creates a server with all routes registered
func NewServer(cfg *config.Config) *Server {
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		router:  gin.New(),
		started: time.Now(),
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes(s.router)

	return s
}

// registerRoutes registers all endpoints with the router
func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)

	v1 := r.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.GET("/supported-languages", s.handleSupportedLanguages)
	v1.GET("/metrics", s.handleMetrics)
}

// Router returns the underlying gin engine, for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until the listener fails
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Server.Addr)
}
