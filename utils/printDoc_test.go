package utils

import (
	"MedicareClinic/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentTitle(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "prescription_Asha_Rao_20260830_140509", DocumentTitle("Asha Rao", now))
	assert.Equal(t, "prescription_Patient_20260830_140509", DocumentTitle("", now))
	// Punctuation never reaches the suggested filename.
	assert.Equal(t, "prescription_O_Brien_Jr__20260830_140509", DocumentTitle("O'Brien Jr.", now))
}

func TestRenderPrescriptionDocument(t *testing.T) {
	doc := PrescriptionDocument{
		Title:       "prescription_Asha_Rao_20260830_140509",
		ClinicName:  "Medicare Clinic",
		PatientName: "Asha Rao",
		VisitID:     12,
		Date:        "2026-08-30",
		Diagnosis:   "Tinea corporis",
		Medicines: []models.PrescriptionMedicine{
			{MedicineName: "Tab Terbinafine 250mg", Quantity: "1 tablet", Frequency: "Once daily", Duration: "2 weeks"},
		},
	}

	html, err := RenderPrescriptionDocument(doc)

	assert.NoError(t, err)
	assert.True(t, strings.Contains(html, "Asha Rao"))
	assert.True(t, strings.Contains(html, "Tab Terbinafine 250mg"))
	assert.True(t, strings.Contains(html, "window.print()"))
}
