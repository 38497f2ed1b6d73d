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

type MedicineHandler struct {
	service     *services.MedicineService
	activityLog *services.ActivityLogService
}

func NewMedicineHandler(service *services.MedicineService, activityLog *services.ActivityLogService) *MedicineHandler {
	return &MedicineHandler{service: service, activityLog: activityLog}
}

func (h *MedicineHandler) RecordMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Record(c.Request.Context(), &medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Recorded medicine purchase #%d for %s", medicine.MedID, medicine.PatientName))
	c.JSON(http.StatusCreated, medicine)
}

func (h *MedicineHandler) GetMedicineByID(c *gin.Context) {
	id, ok := paramInt(c, "med_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine record id"})
		return
	}

	medicine, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medicine record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *MedicineHandler) ListMedicines(c *gin.Context) {
	page, perPage := parsePagination(c)
	filter := repositories.MedicineFilter{
		PatientName: c.Query("name"),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
		Page:        page,
		PerPage:     perPage,
	}

	medicines, count, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"medicines": medicines,
		"total":     count,
		"page":      page,
		"per_page":  perPage,
	})
}

func (h *MedicineHandler) ListMedicinesByPatient(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	medicines, err := h.service.ListByPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	id, ok := paramInt(c, "med_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine record id"})
		return
	}

	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	medicine.MedID = id

	if err := h.service.Update(c.Request.Context(), &medicine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Updated medicine purchase #%d", medicine.MedID))
	c.JSON(http.StatusOK, medicine)
}

func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	id, ok := paramInt(c, "med_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine record id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Deleted medicine purchase #%d", id))
	c.Status(http.StatusNoContent)
}

func (h *MedicineHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
