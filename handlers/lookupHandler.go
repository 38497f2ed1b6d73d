package handlers

import (
	"MedicareClinic/middlewares"
	"MedicareClinic/models"
	"MedicareClinic/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LookupHandler struct {
	service     *services.LookupService
	activityLog *services.ActivityLogService
}

func NewLookupHandler(service *services.LookupService, activityLog *services.ActivityLogService) *LookupHandler {
	return &LookupHandler{service: service, activityLog: activityLog}
}

func lookupKind(c *gin.Context) (models.LookupKind, bool) {
	kind := models.LookupKind(c.Param("kind"))
	if _, err := models.LookupTable(kind); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return kind, true
}

// GetOptions returns the merged dropdown list for one pickable field.
func (h *LookupHandler) GetOptions(c *gin.Context) {
	kind, ok := lookupKind(c)
	if !ok {
		return
	}

	options, err := h.service.Options(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

func (h *LookupHandler) AddOption(c *gin.Context) {
	kind, ok := lookupKind(c)
	if !ok {
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	option, err := h.service.AddOption(c.Request.Context(), kind, body.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Added custom %s option %q", kind, option.Value))
	c.JSON(http.StatusCreated, option)
}

func (h *LookupHandler) DeleteOption(c *gin.Context) {
	kind, ok := lookupKind(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option id"})
		return
	}

	if err := h.service.DeleteOption(c.Request.Context(), kind, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Deleted custom %s option #%d", kind, id))
	c.Status(http.StatusNoContent)
}

func (h *LookupHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
