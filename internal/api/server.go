// Package api exposes the derived dashboard projections over HTTP.
// Every endpoint is read-only; filtering by time, tag, or status is a
// client-side concern over the normalized payloads.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/steventanyang/laudure/internal/analytics"
	"github.com/steventanyang/laudure/internal/cache"
	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/models"
	"github.com/steventanyang/laudure/internal/monitoring"
	"github.com/steventanyang/laudure/internal/report"
)

// Options configures the optional server collaborators.
type Options struct {
	Cache        *cache.Store
	Archive      *report.Archive
	JWTSecret    string
	AllowOrigins []string
}

// Server handles the dashboard API requests.
type Server struct {
	router    *gin.Engine
	data      *models.DinersList
	menuAgg   *analytics.MenuAggregator
	volumeAgg *analytics.VolumeAggregator
	reports   *report.Builder
	monitor   *monitoring.Monitor
	cache     *cache.Store
	archive   *report.Archive
}

// NewServer creates the dashboard API server over a loaded dataset.
func NewServer(data *models.DinersList, classifier *menu.Classifier, opts Options) *Server {
	server := &Server{
		router:    gin.Default(),
		data:      data,
		menuAgg:   analytics.NewMenuAggregator(classifier),
		volumeAgg: analytics.NewVolumeAggregator(classifier, analytics.TastingMenuPseudoItem),
		reports:   report.NewBuilder(classifier),
		monitor:   monitoring.NewMonitor(),
		cache:     opts.Cache,
		archive:   opts.Archive,
	}

	if len(opts.AllowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		if opts.AllowOrigins[0] == "*" {
			corsConfig.AllowAllOrigins = true
		} else {
			corsConfig.AllowOrigins = opts.AllowOrigins
		}
		server.router.Use(cors.New(corsConfig))
	}

	server.setupRoutes(opts.JWTSecret)
	return server
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes(jwtSecret string) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "laudure API is running"})
	})
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	if jwtSecret != "" {
		api.Use(AuthMiddleware(jwtSecret))
	}
	{
		api.GET("/menu-analytics", s.handleMenuAnalytics)
		api.GET("/volume-data", s.handleVolumeData)
		api.GET("/timeline-data", s.handleTimelineData)
		api.GET("/kitchen-notes", s.handleKitchenNotes)
		api.GET("/metrics", s.handleMetrics)
		api.GET("/report", s.handleReport)
		api.GET("/report/dates", s.handleReportDates)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Monitor returns the server's metrics snapshot collector.
func (s *Server) Monitor() *monitoring.Monitor {
	return s.monitor
}
