package handlers

import (
	"MedicareClinic/middlewares"
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"MedicareClinic/services"
	"MedicareClinic/utils"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PatientHandler struct {
	service     *services.PatientService
	activityLog *services.ActivityLogService
	uploadDir   string
}

func NewPatientHandler(service *services.PatientService, activityLog *services.ActivityLogService, uploadDir string) *PatientHandler {
	return &PatientHandler{service: service, activityLog: activityLog, uploadDir: uploadDir}
}

func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Register(ctx, &patient); err != nil {
		if errors.Is(err, services.ErrDuplicatePatientName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Registered patient #%d (%s)", patient.PatientID, patient.Name))
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	page, perPage := parsePagination(c)
	filter := repositories.PatientFilter{
		Name:    c.Query("name"),
		Phone:   c.Query("phone"),
		Sex:     c.Query("sex"),
		Page:    page,
		PerPage: perPage,
	}

	patients, count, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"total":    count,
		"page":     page,
		"per_page": perPage,
	})
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	patient.PatientID = id

	if err := h.service.Update(c.Request.Context(), &patient); err != nil {
		if errors.Is(err, services.ErrDuplicatePatientName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Updated patient #%d (%s)", patient.PatientID, patient.Name))
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Deleted patient #%d", id))
	c.Status(http.StatusNoContent)
}

// UploadPatientImage stores a profile photo on disk and records its filename
// on the patient row.
func (h *PatientHandler) UploadPatientImage(c *gin.Context) {
	id, ok := paramInt(c, "patient_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	sanitized, err := utils.SanitizeImageFilename(file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filename := fmt.Sprintf("%d_%s_%s", id, uuid.New().String()[:8], sanitized)

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.service.SetImage(c.Request.Context(), id, filename); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordActivity(c, fmt.Sprintf("Uploaded photo for patient #%d", id))
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

// GetPatientImage serves a stored profile photo by filename.
func (h *PatientHandler) GetPatientImage(c *gin.Context) {
	sanitized, err := utils.SanitizeImageFilename(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path := filepath.Join(h.uploadDir, sanitized)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.File(path)
}

func (h *PatientHandler) recordActivity(c *gin.Context, action string) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.activityLog.Record(c.Request.Context(), userID, action)
}
