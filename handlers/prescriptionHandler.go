package handlers

import (
	"MedicareClinic/middlewares"
	"MedicareClinic/models"
	"MedicareClinic/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service     *services.PrescriptionService
	activityLog *services.ActivityLogService
}

func NewPrescriptionHandler(service *services.PrescriptionService, activityLog *services.ActivityLogService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service, activityLog: activityLog}
}

func (h *PrescriptionHandler) GetPrescriptionByVisit(c *gin.Context) {
	visitID, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	prescription, err := h.service.GetByVisit(c.Request.Context(), visitID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if prescription == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No prescription saved for this visit"})
		return
	}
	c.JSON(http.StatusOK, prescription)
}

func (h *PrescriptionHandler) SavePrescription(c *gin.Context) {
	visitID, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	prescription.VisitID = visitID

	if err := h.service.Save(c.Request.Context(), &prescription); err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Saved prescription for visit #%d", visitID))
	c.JSON(http.StatusOK, prescription)
}

// PrintPrescription renders the printable prescription page.
func (h *PrescriptionHandler) PrintPrescription(c *gin.Context) {
	visitID, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	document, err := h.service.BuildDocument(c.Request.Context(), visitID)
	if err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Printed prescription for visit #%d", visitID))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}

func (h *PrescriptionHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
