// Package web serves the project generator as a server-rendered page.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phravins/stackgen/internal/catalog"
	"github.com/phravins/stackgen/internal/project"
	"github.com/phravins/stackgen/internal/stack"
)

type Server struct {
	engine  *gin.Engine
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewServer(c catalog.Catalog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:  gin.New(),
		catalog: c,
		logger:  logger,
	}
	s.engine.Use(gin.Recovery(), requestLogger(logger))

	s.engine.GET("/", s.handlePage)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := s.engine.Group("/api")
	api.GET("/catalog", s.handleCatalog)
	api.GET("/idea", s.handleIdea)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handlePage(c *gin.Context) {
	state := parseState(s.catalog, c.Request.URL.Query())
	if state.view == stack.Generated {
		s.logger.Info("project generated",
			zap.Any("selection", state.selection.Values()),
			zap.Bool("empty", state.selection.Empty()))
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := renderPage(s.catalog, state).Render(c.Writer); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": s.catalog.Sections()})
}

func (s *Server) handleIdea(c *gin.Context) {
	c.JSON(http.StatusOK, project.Generate(stack.NewSelection(s.catalog)))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	<-errCh
	s.logger.Info("web server stopped")
	return nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
