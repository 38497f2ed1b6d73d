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

// ErrMedicineNotFound is returned for lookups of a record id that does not
// exist.
var ErrMedicineNotFound = errors.New("medicine record not found")

type MedicineService struct {
	medicineRepo repositories.MedicineRepository
	patientRepo  repositories.PatientRepository
}

func NewMedicineService(medicineRepo repositories.MedicineRepository, patientRepo repositories.PatientRepository) *MedicineService {
	return &MedicineService{medicineRepo: medicineRepo, patientRepo: patientRepo}
}

// Record assigns the next record id and inserts the drug purchase. A
// registered patient matching the phone number gets linked; walk-ins stay
// name-only with a zero patient id.
func (s *MedicineService) Record(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return fmt.Errorf("invalid medicine data: %w", err)
	}

	if medicine.PatientID == 0 && medicine.PhoneNo != "" {
		patient, err := s.patientRepo.GetByPhone(ctx, medicine.PhoneNo)
		if err != nil {
			return err
		}
		if patient != nil {
			medicine.PatientID = patient.PatientID
		}
	}

	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, "medicine_id_lock", lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, "medicine_id_lock", lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	maxID, err := s.medicineRepo.MaxID(ctx)
	if err != nil {
		return err
	}
	medicine.MedID = repositories.NextID(maxID)

	return s.medicineRepo.Insert(ctx, medicine)
}

func (s *MedicineService) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return medicine, nil
}

func (s *MedicineService) List(ctx context.Context, filter repositories.MedicineFilter) ([]models.Medicine, int64, error) {
	return s.medicineRepo.List(ctx, filter)
}

func (s *MedicineService) ListByPatient(ctx context.Context, patientID int) ([]models.Medicine, error) {
	return s.medicineRepo.ListByPatient(ctx, patientID)
}

func (s *MedicineService) Update(ctx context.Context, medicine *models.Medicine) error {
	if err := utils.ValidateMedicineData(*medicine); err != nil {
		return fmt.Errorf("invalid medicine data: %w", err)
	}
	return s.medicineRepo.Update(ctx, medicine)
}

func (s *MedicineService) Delete(ctx context.Context, id int) error {
	return s.medicineRepo.Delete(ctx, id)
}
