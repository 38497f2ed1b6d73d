package services

import (
	"MedicareClinic/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPatientStatus(t *testing.T) {
	tests := []struct {
		name             string
		hasPriorVisit    bool
		hasPriorPurchase bool
		want             string
	}{
		{"no history at all", false, false, models.PatientStatusNew},
		{"prior visit only", true, false, models.PatientStatusOld},
		{"prior drug purchase only", false, true, models.PatientStatusOld},
		{"both ledgers have history", true, true, models.PatientStatusOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPatientStatus(tt.hasPriorVisit, tt.hasPriorPurchase))
		})
	}
}

func TestVisitAge(t *testing.T) {
	patient := models.Patient{YearOfBirth: 1990}
	assert.Equal(t, 36, visitAge(patient, "2026-08-30"))
	assert.Equal(t, 10, visitAge(patient, "2000-01-01"))
}
