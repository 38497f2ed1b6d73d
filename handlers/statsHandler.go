package handlers

import (
	"MedicareClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// DailyBreakdown returns per-date totals across the whole ledger history,
// newest first. Pagination happens client-side.
func (h *StatsHandler) DailyBreakdown(c *gin.Context) {
	rows, err := h.service.DailyBreakdown(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DailyStats returns the single-day snapshot, defaulting to today.
func (h *StatsHandler) DailyStats(c *gin.Context) {
	snapshot, err := h.service.TodaySnapshot(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *StatsHandler) MonthlyStats(c *gin.Context) {
	rows, err := h.service.MonthlyBreakdown(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
