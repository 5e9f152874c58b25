package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Locations table
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/locations [get]
func (h *Handler) LocationsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.KB.LocationRows()})
}

// @Summary Location drill-down
// @Tags dashboard
// @Produce json
// @Param slug path string true "Location slug"
// @Success 200 {object} knowledge.LocationRow
// @Failure 404 {object} map[string]any
// @Router /api/locations/{slug} [get]
func (h *Handler) LocationDetails(c *gin.Context) {
	row, ok := h.KB.LocationBySlug(c.Param("slug"))
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Location not found", nil)
		return
	}
	c.JSON(http.StatusOK, row)
}

// @Summary Trending topics panel
// @Tags dashboard
// @Produce json
// @Success 200 {object} knowledge.TrendingSummary
// @Router /api/trending-topics [get]
func (h *Handler) TrendingTopics(c *gin.Context) {
	c.JSON(http.StatusOK, h.KB.Trending())
}

func (h *Handler) CallReasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.KB.CallReasons()})
}

func (h *Handler) FrequentCallers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.KB.Callers()})
}

func (h *Handler) Brands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.KB.Brands()})
}
