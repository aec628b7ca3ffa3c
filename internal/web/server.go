package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/putwheel/optionstream/internal/provider"
	"github.com/putwheel/optionstream/internal/relay"
)

// Server hosts the websocket streaming route and the REST API on one
// engine.
type Server struct {
	relay    *relay.Relay
	provider *provider.Client
	logger   *slog.Logger
	engine   *gin.Engine
}

// NewServer builds the engine and registers all routes.
func NewServer(r *relay.Relay, pc *provider.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		relay:    r,
		provider: pc,
		logger:   logger,
		engine:   engine,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Streaming endpoint
	s.engine.GET("/ws/options/:symbol/", s.handleStream)

	// REST API
	api := s.engine.Group("/api")
	api.GET("/options/puts/", s.handlePutContracts)
	api.POST("/options/puts/calculate/", s.handleCalculate)
	api.GET("/quote/", s.handleQuote)
	api.GET("/health", s.handleHealth)

	// Everything else, websocket or not
	s.engine.NoRoute(s.handleUnknownPath)
}

// Handler exposes the engine for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}
