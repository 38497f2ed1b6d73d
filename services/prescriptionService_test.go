package services

import (
	"MedicareClinic/models"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrescriptionSaveRejectsUnknownVisit(t *testing.T) {
	visitRepo := &MockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Visit, error) {
			return nil, nil
		},
	}
	service := NewPrescriptionService(&MockPrescriptionRepository{}, visitRepo)

	err := service.Save(context.Background(), &models.Prescription{
		VisitID:   99,
		Medicines: []models.PrescriptionMedicine{{MedicineName: "Tab Fexofenadine 120mg"}},
	})
	assert.True(t, errors.Is(err, ErrVisitNotFound))
}

func TestPrescriptionSaveRejectsNamelessLineItem(t *testing.T) {
	service := NewPrescriptionService(&MockPrescriptionRepository{}, &MockVisitRepository{})

	err := service.Save(context.Background(), &models.Prescription{
		VisitID:   1,
		Medicines: []models.PrescriptionMedicine{{Quantity: "1 tablet"}},
	})
	assert.Error(t, err)
}

func TestPrescriptionSavePassesFullSet(t *testing.T) {
	var saved *models.Prescription
	prescriptionRepo := &MockPrescriptionRepository{
		SaveFunc: func(ctx context.Context, prescription *models.Prescription) error {
			saved = prescription
			return nil
		},
	}
	visitRepo := &MockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Visit, error) {
			return &models.Visit{VisitID: id}, nil
		},
	}
	service := NewPrescriptionService(prescriptionRepo, visitRepo)

	prescription := &models.Prescription{
		VisitID:   7,
		Diagnosis: "Tinea corporis",
		Medicines: []models.PrescriptionMedicine{
			{MedicineName: "Tab Terbinafine 250mg", Frequency: "Once daily", Duration: "2 weeks"},
			{MedicineName: "Luliconazole Cream 1%", Instructions: "Apply on affected area"},
		},
	}
	err := service.Save(context.Background(), prescription)

	assert.NoError(t, err)
	assert.Equal(t, prescription, saved)
	assert.Len(t, saved.Medicines, 2)
}

func TestBuildDocumentRendersVisitAndMedicines(t *testing.T) {
	visitRepo := &MockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Visit, error) {
			return &models.Visit{
				VisitID:   3,
				PatientID: 12,
				FullName:  "Asha Rao",
				Date:      "2026-08-30",
				Age:       34,
				Sex:       "F",
			}, nil
		},
	}
	prescriptionRepo := &MockPrescriptionRepository{
		GetByVisitIDFunc: func(ctx context.Context, visitID int) (*models.Prescription, error) {
			return &models.Prescription{
				VisitID:   visitID,
				Diagnosis: "Atopic dermatitis",
				Medicines: []models.PrescriptionMedicine{
					{MedicineName: "Mometasone Cream 0.1%", Instructions: "Apply on affected area"},
				},
			}, nil
		},
	}
	service := NewPrescriptionService(prescriptionRepo, visitRepo)

	document, err := service.BuildDocument(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, strings.Contains(document, "Asha Rao"))
	assert.True(t, strings.Contains(document, "Atopic dermatitis"))
	assert.True(t, strings.Contains(document, "Mometasone Cream 0.1%"))
	assert.True(t, strings.Contains(document, "prescription_Asha_Rao_"))
}

func TestBuildDocumentWithoutPrescription(t *testing.T) {
	visitRepo := &MockVisitRepository{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Visit, error) {
			return &models.Visit{VisitID: id}, nil
		},
	}
	prescriptionRepo := &MockPrescriptionRepository{
		GetByVisitIDFunc: func(ctx context.Context, visitID int) (*models.Prescription, error) {
			return nil, nil
		},
	}
	service := NewPrescriptionService(prescriptionRepo, visitRepo)

	_, err := service.BuildDocument(context.Background(), 5)
	assert.Error(t, err)
}
