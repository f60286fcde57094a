package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"homematch/internal/index"
	"homematch/internal/model"
	"homematch/internal/service"
	"homematch/internal/store"
)

// ListingHandler handles listing catalog HTTP requests
type ListingHandler struct {
	store        *store.Store
	generator    *service.ListingGenerator
	prefs        *service.PreferenceBuilder
	scorer       *service.Scorer
	index        index.Index
	defaultCount int
	log          zerolog.Logger
}

// NewListingHandler creates a new listing handler
func NewListingHandler(
	st *store.Store,
	generator *service.ListingGenerator,
	prefs *service.PreferenceBuilder,
	scorer *service.Scorer,
	idx index.Index,
	defaultCount int,
	log zerolog.Logger,
) *ListingHandler {
	return &ListingHandler{
		store:        st,
		generator:    generator,
		prefs:        prefs,
		scorer:       scorer,
		index:        idx,
		defaultCount: defaultCount,
		log:          log.With().Str("component", "listing_handler").Logger(),
	}
}

// List handles GET /api/v1/listings
func (h *ListingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"listings": h.store.All(),
		"count":    h.store.Len(),
	})
}

// Get handles GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	listing, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Rank handles POST /api/v1/listings/rank - the coarse hard-filter ranking
// over the catalog, without semantic retrieval or personalization.
func (h *ListingHandler) Rank(c *gin.Context) {
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prefs, err := h.prefs.Build(c.Request.Context(), req.Preferences)
	if err != nil {
		if errors.Is(err, service.ErrNoPreferences) || errors.Is(err, service.ErrInvalidPreference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ranking failed: " + err.Error()})
		return
	}

	ranked := h.scorer.Rank(h.store.All(), prefs)
	c.JSON(http.StatusOK, gin.H{
		"results": ranked,
		"count":   len(ranked),
	})
}

// Generate handles POST /api/v1/listings/generate. It replaces the catalog
// with freshly generated listings and rebuilds the semantic index over them.
func (h *ListingHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = h.defaultCount
	}

	listings, usedFallback := h.generator.Generate(c.Request.Context(), req.Count)
	if len(listings) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation produced no listings"})
		return
	}

	kept := h.store.Replace(listings)

	indexBuilt := false
	if h.index != nil {
		entries := service.IndexEntries(h.store.All())
		if err := h.index.Build(c.Request.Context(), entries); err != nil {
			h.log.Warn().Err(err).Msg("index rebuild failed, semantic retrieval unavailable")
		} else {
			indexBuilt = true
		}
	}

	c.JSON(http.StatusOK, model.GenerateResponse{
		Generated:    kept,
		UsedFallback: usedFallback,
		IndexBuilt:   indexBuilt,
	})
}
