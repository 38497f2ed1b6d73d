package handlers

import (
	"MedicareClinic/middlewares"
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"MedicareClinic/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VisitHandler struct {
	service     *services.VisitService
	activityLog *services.ActivityLogService
}

func NewVisitHandler(service *services.VisitService, activityLog *services.ActivityLogService) *VisitHandler {
	return &VisitHandler{service: service, activityLog: activityLog}
}

func (h *VisitHandler) RecordVisit(c *gin.Context) {
	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Record(c.Request.Context(), &visit); err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Recorded visit #%d for %s", visit.VisitID, visit.FullName))
	c.JSON(http.StatusCreated, visit)
}

func (h *VisitHandler) GetVisitByID(c *gin.Context) {
	id, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	visit, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visit)
}

func (h *VisitHandler) ListVisits(c *gin.Context) {
	page, perPage := parsePagination(c)
	filter := repositories.VisitFilter{
		Name:             c.Query("name"),
		DateFrom:         c.Query("date_from"),
		DateTo:           c.Query("date_to"),
		ConsultationType: c.Query("consultation_type"),
		Page:             page,
		PerPage:          perPage,
	}

	visits, count, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"visits":   visits,
		"total":    count,
		"page":     page,
		"per_page": perPage,
	})
}

func (h *VisitHandler) ListVisitsByPatient(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	visits, err := h.service.ListByPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (h *VisitHandler) UpdateVisit(c *gin.Context) {
	id, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	visit.VisitID = id

	if err := h.service.Update(c.Request.Context(), &visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Updated visit #%d", visit.VisitID))
	c.JSON(http.StatusOK, visit)
}

func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	id, ok := paramInt(c, "visit_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Deleted visit #%d", id))
	c.Status(http.StatusNoContent)
}

func (h *VisitHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
