package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/steventanyang/laudure/internal/cache"
	"github.com/steventanyang/laudure/internal/models"
	"github.com/steventanyang/laudure/internal/monitoring"
	"github.com/steventanyang/laudure/internal/report"
	"github.com/steventanyang/laudure/internal/timeline"
)

// cached runs compute through the TTL cache when one is configured.
// Caching is an optimization only; a cold cache and a hot cache serve
// byte-identical payloads.
func (s *Server) cached(key string, compute func() (interface{}, error)) (interface{}, error) {
	if s.cache == nil {
		return compute()
	}
	if value, ok := s.cache.Get(key); ok {
		monitoring.CacheHits.WithLabelValues(key, "hit").Inc()
		return value, nil
	}
	monitoring.CacheHits.WithLabelValues(key, "miss").Inc()

	value, err := compute()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, value)
	return value, nil
}

// fail logs the underlying error and returns the generic message; the
// API never leaks internals to the UI.
func fail(c *gin.Context, endpoint string, err error) {
	log.Printf("Error fetching %s: %v", endpoint, err)
	monitoring.RequestsTotal.WithLabelValues(endpoint, "500").Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + endpoint})
}

func ok(c *gin.Context, endpoint string, payload interface{}) {
	monitoring.RequestsTotal.WithLabelValues(endpoint, "200").Inc()
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleMenuAnalytics(c *gin.Context) {
	payload, err := s.cached(cache.KeyMenuAnalytics, func() (interface{}, error) {
		start := time.Now()
		defer func() {
			monitoring.AggregationDuration.WithLabelValues("menu").Observe(time.Since(start).Seconds())
		}()

		counts, err := s.menuAgg.Aggregate(s.data)
		if err != nil {
			return nil, err
		}
		return s.menuAgg.AttachColors(counts), nil
	})
	if err != nil {
		fail(c, "menu analytics", err)
		return
	}
	ok(c, "menu analytics", payload)
}

func (s *Server) handleVolumeData(c *gin.Context) {
	payload, err := s.cached(cache.KeyVolumeData, func() (interface{}, error) {
		start := time.Now()
		defer func() {
			monitoring.AggregationDuration.WithLabelValues("volume").Observe(time.Since(start).Seconds())
		}()

		return s.volumeAgg.AggregateDetailed(s.data)
	})
	if err != nil {
		fail(c, "volume data", err)
		return
	}
	ok(c, "volume data", payload)
}

func (s *Server) handleTimelineData(c *gin.Context) {
	payload, err := s.cached(cache.KeyTimelineData, func() (interface{}, error) {
		start := time.Now()
		defer func() {
			monitoring.AggregationDuration.WithLabelValues("timeline").Observe(time.Since(start).Seconds())
		}()

		details, err := timeline.ReservationDetails(s.data)
		if err != nil {
			return nil, err
		}
		log.Printf("Found %d reservations with kitchen notes", len(details))
		s.monitor.RecordPipelineRun("timeline", map[string]interface{}{
			"reservations": len(details),
		})
		return details, nil
	})
	if err != nil {
		fail(c, "reservation details", err)
		return
	}
	ok(c, "reservation details", payload)
}

func (s *Server) handleKitchenNotes(c *gin.Context) {
	payload, err := s.cached(cache.KeyKitchenNotes, func() (interface{}, error) {
		notes, err := timeline.KitchenNotes(s.data)
		if err != nil {
			return nil, err
		}
		log.Printf("Found %d kitchen notes", len(notes))
		s.monitor.RecordPipelineRun("kitchen_notes", map[string]interface{}{
			"notes": len(notes),
		})
		return notes, nil
	})
	if err != nil {
		fail(c, "kitchen notes", err)
		return
	}
	ok(c, "kitchen notes", payload)
}

// handleMetrics serves the monitor snapshot (the prometheus collectors
// live on the separate metrics port).
func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}

// handleReport renders the printable service sheet. The date is a
// header label, matching the print view; reservations are not filtered
// by it.
func (s *Server) handleReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	// Reprint path: serve the archived sheet instead of rebuilding.
	if s.archive != nil && c.Query("archived") == "true" {
		archived, err := s.archive.Latest(date)
		if err != nil {
			fail(c, "service report", err)
			return
		}
		if archived == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No archived report for date"})
			return
		}
		monitoring.RequestsTotal.WithLabelValues("service report", "200").Inc()
		c.String(http.StatusOK, archived.Content)
		return
	}

	details, err := timeline.ReservationDetails(s.data)
	if err != nil {
		fail(c, "service report", err)
		return
	}

	sheet := s.reports.Build(date, details)

	if s.archive != nil {
		urgent := 0
		for _, d := range details {
			if d.Status == models.StatusUrgent {
				urgent++
			}
		}
		archived := &report.ArchivedReport{
			Date:         date,
			Reservations: len(details),
			UrgentCount:  urgent,
			Content:      sheet,
		}
		if err := s.archive.Save(archived); err != nil {
			log.Printf("Error archiving service report: %v", err)
		}
	}

	monitoring.RequestsTotal.WithLabelValues("service report", "200").Inc()
	c.String(http.StatusOK, sheet)
}

func (s *Server) handleReportDates(c *gin.Context) {
	if s.archive == nil {
		c.JSON(http.StatusOK, []string{})
		return
	}
	dates, err := s.archive.ListDates()
	if err != nil {
		fail(c, "report dates", err)
		return
	}
	ok(c, "report dates", dates)
}
