package repositories

import (
	"MedicareClinic/database"
	"MedicareClinic/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	GetByVisitID(ctx context.Context, visitID int) (*models.Prescription, error)
	Save(ctx context.Context, prescription *models.Prescription) error
	DeleteByVisitID(ctx context.Context, visitID int) error
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) GetByVisitID(ctx context.Context, visitID int) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescription models.Prescription
	err := database.DB.WithContext(ctx).
		Preload("Medicines", func(db *gorm.DB) *gorm.DB {
			return db.Order("medicine_id ASC")
		}).
		First(&prescription, "visit_id = ?", visitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

// Save persists the prescription for its visit as a full replacement: the
// header is updated or inserted and the previous line items are discarded
// before the new set is written, all in one transaction.
func (r *prescriptionRepository) Save(ctx context.Context, prescription *models.Prescription) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Prescription
		err := tx.First(&existing, "visit_id = ?", prescription.VisitID).Error
		switch {
		case err == nil:
			prescription.PrescriptionID = existing.PrescriptionID
			updates := map[string]interface{}{
				"symptoms":  prescription.Symptoms,
				"findings":  prescription.Findings,
				"diagnosis": prescription.Diagnosis,
			}
			if err := tx.Model(&models.Prescription{}).
				Where("prescription_id = ?", existing.PrescriptionID).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update prescription: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			header := models.Prescription{
				VisitID:   prescription.VisitID,
				Symptoms:  prescription.Symptoms,
				Findings:  prescription.Findings,
				Diagnosis: prescription.Diagnosis,
			}
			if err := tx.Create(&header).Error; err != nil {
				return fmt.Errorf("failed to create prescription: %w", err)
			}
			prescription.PrescriptionID = header.PrescriptionID
		default:
			return fmt.Errorf("failed to look up prescription: %w", err)
		}

		if err := tx.Where("prescription_id = ?", prescription.PrescriptionID).
			Delete(&models.PrescriptionMedicine{}).Error; err != nil {
			return fmt.Errorf("failed to clear prescription medicines: %w", err)
		}

		for i := range prescription.Medicines {
			prescription.Medicines[i].MedicineID = 0
			prescription.Medicines[i].PrescriptionID = prescription.PrescriptionID
		}
		if len(prescription.Medicines) > 0 {
			if err := tx.Create(&prescription.Medicines).Error; err != nil {
				return fmt.Errorf("failed to create prescription medicines: %w", err)
			}
		}
		return nil
	})
}

func (r *prescriptionRepository) DeleteByVisitID(ctx context.Context, visitID int) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prescription models.Prescription
		err := tx.First(&prescription, "visit_id = ?", visitID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up prescription: %w", err)
		}
		if err := tx.Where("prescription_id = ?", prescription.PrescriptionID).
			Delete(&models.PrescriptionMedicine{}).Error; err != nil {
			return fmt.Errorf("failed to delete prescription medicines: %w", err)
		}
		if err := tx.Delete(&models.Prescription{}, "prescription_id = ?", prescription.PrescriptionID).Error; err != nil {
			return fmt.Errorf("failed to delete prescription: %w", err)
		}
		return nil
	})
}
