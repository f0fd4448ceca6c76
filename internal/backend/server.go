// internal/backend/server.go
package backend

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
)

// Server wraps the reference backend in an HTTP server.
type Server struct {
	config     *config.Config
	logger     *logrus.Logger
	store      *Store
	gin        *gin.Engine
	httpServer *http.Server
}

// NewServer creates a server with a freshly seeded store.
func NewServer(cfg *config.Config, logger *logrus.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
		store:  NewStore(cfg.Server.NthOrderForDiscount),
	}
	s.setupEngine()
	return s
}

// Store exposes the underlying store. Used by tests to seed codes and reset
// state between cases.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the HTTP handler, for mounting under httptest.
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.Infof("HTTP server starting on port %s", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

func (s *Server) setupEngine() {
	switch {
	case s.config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case s.config.App.Environment == "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(Logger(s.logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	handler := NewHandler(s.store)

	engine.GET("/", handler.Root)
	engine.GET("/products", handler.GetProducts)
	engine.GET("/products/:id", handler.GetProduct)
	engine.GET("/cart", handler.GetCart)
	engine.POST("/cart/add", handler.AddToCart)
	engine.DELETE("/cart/remove", handler.RemoveFromCart)
	engine.POST("/checkout", handler.Checkout)
	engine.POST("/admin/generate-discount", handler.GenerateDiscount)
	engine.GET("/discount/validate", handler.ValidateDiscount)
	engine.GET("/admin/stats", handler.GetStats)

	// Product images resolve against the backend origin.
	engine.Static("/static", s.config.Server.StaticDir)
	engine.StaticFile("/image.png", filepath.Join(s.config.Server.StaticDir, "image.png"))

	s.gin = engine
}
