package services

import (
	"MedicareClinic/database"
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"MedicareClinic/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned for lookups of a visit id that does not exist.
var ErrVisitNotFound = errors.New("visit not found")

type VisitService struct {
	visitRepo        repositories.VisitRepository
	medicineRepo     repositories.MedicineRepository
	patientRepo      repositories.PatientRepository
	prescriptionRepo repositories.PrescriptionRepository
}

func NewVisitService(
	visitRepo repositories.VisitRepository,
	medicineRepo repositories.MedicineRepository,
	patientRepo repositories.PatientRepository,
	prescriptionRepo repositories.PrescriptionRepository,
) *VisitService {
	return &VisitService{
		visitRepo:        visitRepo,
		medicineRepo:     medicineRepo,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

// ClassifyPatientStatus maps the prior-record checks to the tag stamped on a
// visit: a phone number with no prior visit and no prior drug purchase is a
// new patient, anything else is returning.
func ClassifyPatientStatus(hasPriorVisit, hasPriorPurchase bool) string {
	if hasPriorVisit || hasPriorPurchase {
		return models.PatientStatusOld
	}
	return models.PatientStatusNew
}

// Record stamps the visit with denormalized patient details, classifies the
// patient as new or returning, assigns the next visit id and inserts the row.
// Classification and id assignment run under one distributed lock so a pair
// of concurrent first visits cannot both observe an empty history.
func (s *VisitService) Record(ctx context.Context, visit *models.Visit) error {
	if err := utils.ValidateVisitData(*visit); err != nil {
		return fmt.Errorf("invalid visit data: %w", err)
	}

	patient, err := s.patientRepo.GetByID(ctx, visit.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	visit.FullName = patient.Name
	visit.Hometown = patient.Hometown
	visit.PhoneNo = patient.PhoneNo
	visit.Sex = patient.Sex
	visit.Age = visitAge(*patient, visit.Date)

	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, "visit_id_lock", lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, "visit_id_lock", lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	hasPriorVisit, err := s.visitRepo.ExistsByPhone(ctx, visit.PhoneNo)
	if err != nil {
		return err
	}
	hasPriorPurchase, err := s.medicineRepo.ExistsByPhone(ctx, visit.PhoneNo)
	if err != nil {
		return err
	}
	visit.NewOld = ClassifyPatientStatus(hasPriorVisit, hasPriorPurchase)

	maxID, err := s.visitRepo.MaxID(ctx)
	if err != nil {
		return err
	}
	visit.VisitID = repositories.NextID(maxID)

	return s.visitRepo.Insert(ctx, visit)
}

func (s *VisitService) GetByID(ctx context.Context, id int) (*models.Visit, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	return visit, nil
}

func (s *VisitService) List(ctx context.Context, filter repositories.VisitFilter) ([]models.Visit, int64, error) {
	return s.visitRepo.List(ctx, filter)
}

func (s *VisitService) ListByPatient(ctx context.Context, patientID int) ([]models.Visit, error) {
	return s.visitRepo.ListByPatient(ctx, patientID)
}

// Update edits the visit's own fields. The new/old tag is never recomputed.
func (s *VisitService) Update(ctx context.Context, visit *models.Visit) error {
	if err := utils.ValidateVisitData(*visit); err != nil {
		return fmt.Errorf("invalid visit data: %w", err)
	}
	return s.visitRepo.Update(ctx, visit)
}

// Delete removes the visit together with its prescription, if one was
// composed.
func (s *VisitService) Delete(ctx context.Context, id int) error {
	if err := s.prescriptionRepo.DeleteByVisitID(ctx, id); err != nil {
		return err
	}
	return s.visitRepo.Delete(ctx, id)
}

// visitAge derives the patient's age in the visit's calendar year, falling
// back to the current year when the date does not parse.
func visitAge(patient models.Patient, date string) int {
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil {
			return patient.Age(year)
		}
	}
	return patient.Age(time.Now().Year())
}
