package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homematch/internal/model"
	"homematch/internal/service"
)

// MatchHandler handles match-related HTTP requests
type MatchHandler struct {
	matcher      *service.Matcher
	defaultLimit int
	maxLimit     int
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matcher *service.Matcher, defaultLimit, maxLimit int) *MatchHandler {
	return &MatchHandler{
		matcher:      matcher,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Match handles POST /api/v1/match
func (h *MatchHandler) Match(c *gin.Context) {
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Set default options if not provided
	if req.Options == nil {
		req.Options = &model.MatchOptions{
			Limit: h.defaultLimit,
		}
	} else {
		// Validate and cap limits
		if req.Options.Limit <= 0 {
			req.Options.Limit = h.defaultLimit
		}
		if req.Options.Limit > h.maxLimit {
			req.Options.Limit = h.maxLimit
		}
		if req.Options.TopK < 0 {
			req.Options.TopK = 0
		}
	}

	response, err := h.matcher.Match(c.Request.Context(), req.Preferences, req.Options)
	if err != nil {
		if errors.Is(err, service.ErrNoPreferences) || errors.Is(err, service.ErrInvalidPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Match failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// MatchReport handles POST /api/v1/match/report - same pipeline, rendered
// as a markdown report instead of JSON.
func (h *MatchHandler) MatchReport(c *gin.Context) {
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Options == nil {
		req.Options = &model.MatchOptions{Limit: h.defaultLimit}
	} else if req.Options.Limit <= 0 {
		req.Options.Limit = h.defaultLimit
	}

	response, err := h.matcher.Match(c.Request.Context(), req.Preferences, req.Options)
	if err != nil {
		if errors.Is(err, service.ErrNoPreferences) || errors.Is(err, service.ErrInvalidPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Match failed: " + err.Error()})
		return
	}

	c.Header("Content-Type", "text/markdown; charset=utf-8")
	c.Status(http.StatusOK)
	// Headers are already sent; a write failure here has nowhere to go.
	_ = service.WriteReport(c.Writer, response)
}
