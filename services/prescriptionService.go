package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"MedicareClinic/utils"
	"context"
	"fmt"
	"time"
)

const (
	clinicName    = "Medicare Clinic"
	clinicTagline = "Skin, Hair & General Care"
)

type PrescriptionService struct {
	prescriptionRepo repositories.PrescriptionRepository
	visitRepo        repositories.VisitRepository
}

func NewPrescriptionService(prescriptionRepo repositories.PrescriptionRepository, visitRepo repositories.VisitRepository) *PrescriptionService {
	return &PrescriptionService{prescriptionRepo: prescriptionRepo, visitRepo: visitRepo}
}

// GetByVisit loads the prescription composed for a visit, or nil when none
// has been saved yet.
func (s *PrescriptionService) GetByVisit(ctx context.Context, visitID int) (*models.Prescription, error) {
	return s.prescriptionRepo.GetByVisitID(ctx, visitID)
}

// Save stores the prescription as the visit's single document: the text
// fields are updated or written fresh and the medicine lines replace whatever
// was there before.
func (s *PrescriptionService) Save(ctx context.Context, prescription *models.Prescription) error {
	if err := utils.ValidatePrescriptionMedicines(prescription.Medicines); err != nil {
		return err
	}

	visit, err := s.visitRepo.GetByID(ctx, prescription.VisitID)
	if err != nil {
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}

	return s.prescriptionRepo.Save(ctx, prescription)
}

// BuildDocument assembles the printable prescription page for a visit.
func (s *PrescriptionService) BuildDocument(ctx context.Context, visitID int) (string, error) {
	visit, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return "", err
	}
	if visit == nil {
		return "", ErrVisitNotFound
	}

	prescription, err := s.prescriptionRepo.GetByVisitID(ctx, visitID)
	if err != nil {
		return "", err
	}
	if prescription == nil {
		return "", fmt.Errorf("no prescription saved for visit %d", visitID)
	}

	now := time.Now()
	doc := utils.PrescriptionDocument{
		Title:         utils.DocumentTitle(visit.FullName, now),
		ClinicName:    clinicName,
		ClinicTagline: clinicTagline,
		PatientName:   visit.FullName,
		PatientID:     visit.PatientID,
		VisitID:       visit.VisitID,
		Date:          visit.Date,
		Age:           visit.Age,
		Gender:        visit.Sex,
		Weight:        visit.Weight,
		BloodPressure: visit.BloodPressure,
		Symptoms:      prescription.Symptoms,
		Findings:      prescription.Findings,
		Diagnosis:     prescription.Diagnosis,
		Medicines:     prescription.Medicines,
		GeneratedAt:   now.Format("02 Jan 2006 15:04"),
	}

	return utils.RenderPrescriptionDocument(doc)
}
