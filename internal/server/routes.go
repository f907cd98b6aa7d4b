package server

import (
	"net/http"
	"strings"

	"github.com/DavidW312/Running-Website/internal/report"
	"github.com/DavidW312/Running-Website/internal/types"
	"github.com/gin-gonic/gin"
)

func (s *Server) RegisterRoutes() http.Handler {
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", s.healthCheck)

	v1 := router.Group("/api/v1")
	v1.Use(s.RateLimitMiddleware())
	{
		weeks := v1.Group("/weeks")
		{
			weeks.GET("/", s.getWeeks)
			weeks.GET("/:tab", s.getWeekTable)
		}

		seasonGroup := v1.Group("/season")
		{
			seasonGroup.GET("/", s.getSeason)
			seasonGroup.GET("/leaderboard", s.getLeaderboard)
			seasonGroup.GET("/groups", s.getGroupLeaders)
		}

		prs := v1.Group("/prs")
		{
			prs.GET("/", s.getPRs)
		}

		meets := v1.Group("/meets")
		{
			meets.GET("/", s.getMeets)
			meets.GET("/:meet", s.getMeetResults)
		}
	}

	return router
}

// Health check endpoint
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Running-Website API is running",
	})
}

// List the discovered week tabs
func (s *Server) getWeeks(c *gin.Context) {
	snapshot, err := s.store.Weeks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	tabs := make([]string, 0, len(snapshot.Weeks))
	for _, week := range snapshot.Weeks {
		tabs = append(tabs, week.Tab)
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snapshot.ID,
		"count":       len(tabs),
		"tabs":        tabs,
		"failed_tabs": snapshot.FailedTabs,
	})
}

// Get one week's mileage table, sorted and sectioned
func (s *Server) getWeekTable(c *gin.Context) {
	tab := strings.TrimSpace(c.Param("tab"))
	if tab == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Week tab name is required"})
		return
	}

	snapshot, err := s.store.Weeks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	for _, week := range snapshot.Weeks {
		if strings.EqualFold(week.Tab, tab) {
			rows := report.WeeklyTable(week)
			c.JSON(http.StatusOK, gin.H{
				"snapshot_id": snapshot.ID,
				"tab":         week.Tab,
				"count":       len(week.Rows),
				"rows":        rows,
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "week tab not found"})
}

// Get season totals and attendance health
func (s *Server) getSeason(c *gin.Context) {
	snapshot, err := s.store.Season(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snapshot.ID,
		"count":       len(snapshot.Totals.Athletes),
		"season":      snapshot.Totals,
		"failed_tabs": snapshot.FailedTabs,
	})
}

// Get the season leaderboard (descending miles, ties keep input order)
func (s *Server) getLeaderboard(c *gin.Context) {
	snapshot, err := s.store.Season(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ranked := report.Leaderboard(snapshot.Totals)
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snapshot.ID,
		"count":       len(ranked),
		"leaderboard": ranked,
	})
}

// Get the top athlete per (gender, group) pair
func (s *Server) getGroupLeaders(c *gin.Context) {
	snapshot, err := s.store.Season(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	leaders := report.GroupLeaders(snapshot.Totals)
	c.JSON(http.StatusOK, gin.H{
		"snapshot_id": snapshot.ID,
		"count":       len(leaders),
		"leaders":     leaders,
	})
}

// Get the PR table, optionally sorted by event and filtered by name
func (s *Server) getPRs(c *gin.Context) {
	registry, err := s.store.PRRegistry(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PR data unavailable"})
		return
	}

	state := report.NewSortState()
	if sortParam := strings.TrimSpace(c.Query("sort")); sortParam != "" {
		column, ok := eventColumn(sortParam)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort column"})
			return
		}
		state.Column = column
		if c.Query("dir") == string(report.SortDesc) {
			state.Dir = report.SortDesc
		}
	}

	records := report.FilterPRs(registry.Records(), c.Query("name"))
	records = report.SortPRs(records, state)

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"sort":    state,
		"records": records,
	})
}

// List the meets present in the race results
func (s *Server) getMeets(c *gin.Context) {
	results, err := s.store.RaceResults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	meets := report.MeetNames(results)
	c.JSON(http.StatusOK, gin.H{
		"count": len(meets),
		"meets": meets,
	})
}

// Get one meet's results, individual or relay
func (s *Server) getMeetResults(c *gin.Context) {
	meet := strings.TrimSpace(c.Param("meet"))
	if meet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meet name is required"})
		return
	}

	results, err := s.store.RaceResults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	switch tab := c.DefaultQuery("tab", "individual"); tab {
	case "individual":
		registry, err := s.store.PRRegistry(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PR data unavailable"})
			return
		}
		rows, summary := report.IndividualResults(results, meet, registry)
		c.JSON(http.StatusOK, gin.H{
			"meet":    meet,
			"tab":     tab,
			"count":   len(rows),
			"rows":    rows,
			"summary": summary,
		})
	case "relay":
		rows, summary := report.RelayResults(results, meet)
		c.JSON(http.StatusOK, gin.H{
			"meet":    meet,
			"tab":     tab,
			"count":   len(rows),
			"rows":    rows,
			"summary": summary,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab must be individual or relay"})
	}
}

// eventColumn maps a sort parameter to an event column index.
func eventColumn(param string) (int, bool) {
	for i, name := range types.EventNames {
		if strings.EqualFold(param, name) {
			return i, true
		}
	}
	switch param {
	case "0", "1", "2":
		return int(param[0] - '0'), true
	}
	return -1, false
}
