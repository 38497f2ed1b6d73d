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
	"time"

	"github.com/google/uuid"
)

// ErrDuplicatePatientName is returned when a registration reuses an existing
// patient's name. Names double as a human-facing unique key on the registry.
var ErrDuplicatePatientName = errors.New("a patient with this name is already registered")

// ErrPatientNotFound is returned for lookups of an id that does not exist.
var ErrPatientNotFound = errors.New("patient not found")

type PatientService struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) *PatientService {
	return &PatientService{patientRepo: patientRepo}
}

// Register assigns the next patient id and inserts the row. The id read and
// the insert run under a distributed lock so concurrent registrations cannot
// observe the same maximum.
func (s *PatientService) Register(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}

	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, "patient_id_lock", lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, "patient_id_lock", lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	exists, err := s.patientRepo.NameExists(ctx, patient.Name, 0)
	if err != nil {
		return fmt.Errorf("failed to check patient name: %w", err)
	}
	if exists {
		return ErrDuplicatePatientName
	}

	maxID, err := s.patientRepo.MaxID(ctx)
	if err != nil {
		return err
	}
	patient.PatientID = repositories.NextID(maxID)

	return s.patientRepo.Insert(ctx, patient)
}

func (s *PatientService) GetByID(ctx context.Context, id int) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *PatientService) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return s.patientRepo.GetByPhone(ctx, phone)
}

func (s *PatientService) List(ctx context.Context, filter repositories.PatientFilter) ([]models.Patient, int64, error) {
	return s.patientRepo.List(ctx, filter)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return fmt.Errorf("invalid patient data: %w", err)
	}

	exists, err := s.patientRepo.NameExists(ctx, patient.Name, patient.PatientID)
	if err != nil {
		return fmt.Errorf("failed to check patient name: %w", err)
	}
	if exists {
		return ErrDuplicatePatientName
	}

	return s.patientRepo.Update(ctx, patient)
}

// SetImage records the stored image filename on the patient row.
func (s *PatientService) SetImage(ctx context.Context, id int, filename string) error {
	return s.patientRepo.SetImage(ctx, id, filename)
}

func (s *PatientService) Delete(ctx context.Context, id int) error {
	return s.patientRepo.Delete(ctx, id)
}
