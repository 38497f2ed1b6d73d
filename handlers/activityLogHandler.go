package handlers

import (
	"MedicareClinic/repositories"
	"MedicareClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ActivityLogHandler struct {
	service *services.ActivityLogService
}

func NewActivityLogHandler(service *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{service: service}
}

func (h *ActivityLogHandler) ListActivityLogs(c *gin.Context) {
	page, perPage := parsePagination(c)
	filter := repositories.ActivityLogFilter{
		UserUUID: c.Query("user_uuid"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Page:     page,
		PerPage:  perPage,
	}

	entries, count, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":     entries,
		"total":    count,
		"page":     page,
		"per_page": perPage,
	})
}
