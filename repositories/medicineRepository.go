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

// MedicineFilter narrows and pages the drug-purchase ledger listing.
type MedicineFilter struct {
	PatientName string
	DateFrom    string
	DateTo      string
	Page        int
	PerPage     int
}

type MedicineRepository interface {
	MaxID(ctx context.Context) (int, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Insert(ctx context.Context, medicine *models.Medicine) error
	GetByID(ctx context.Context, id int) (*models.Medicine, error)
	List(ctx context.Context, filter MedicineFilter) ([]models.Medicine, int64, error)
	ListByPatient(ctx context.Context, patientID int) ([]models.Medicine, error)
	ListAll(ctx context.Context) ([]models.Medicine, error)
	ListByDate(ctx context.Context, date string) ([]models.Medicine, error)
	Update(ctx context.Context, medicine *models.Medicine) error
	Delete(ctx context.Context, id int) error
}

type medicineRepository struct{}

func NewMedicineRepository() MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) MaxID(ctx context.Context) (int, error) {
	var maxID int
	err := database.DB.WithContext(ctx).Model(&models.Medicine{}).
		Select("COALESCE(MAX(med_id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max medicine id: %w", err)
	}
	return maxID, nil
}

func (r *medicineRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Medicine{}).
		Where("phone_no = ?", phone).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check prior medicine records: %w", err)
	}
	return count > 0, nil
}

func (r *medicineRepository) Insert(ctx context.Context, medicine *models.Medicine) error {
	if err := database.DB.WithContext(ctx).Create(medicine).Error; err != nil {
		return fmt.Errorf("failed to create medicine record: %w", err)
	}
	return nil
}

func (r *medicineRepository) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var medicine models.Medicine
	err := database.DB.WithContext(ctx).First(&medicine, "med_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medicine record: %w", err)
	}
	return &medicine, nil
}

func (r *medicineRepository) List(ctx context.Context, filter MedicineFilter) ([]models.Medicine, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).Model(&models.Medicine{})
	if filter.PatientName != "" {
		query = query.Where("patient_name ILIKE ?", "%"+filter.PatientName+"%")
	}
	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count medicine records: %w", err)
	}

	var medicines []models.Medicine
	err := query.Order("med_id DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list medicine records: %w", err)
	}

	return medicines, count, nil
}

func (r *medicineRepository) ListByPatient(ctx context.Context, patientID int) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := database.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&medicines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medicine records for patient: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) ListAll(ctx context.Context) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := database.DB.WithContext(ctx).
		Select("med_id, date, drug_fee, payment_method").
		Order("date DESC").
		Find(&medicines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medicine records: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) ListByDate(ctx context.Context, date string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := database.DB.WithContext(ctx).
		Where("date = ?", date).
		Find(&medicines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medicine records by date: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	result := database.DB.WithContext(ctx).Model(&models.Medicine{}).
		Where("med_id = ?", medicine.MedID).
		Select("date", "patient_name", "phone_no", "drug_fee", "payment_method", "patient_id").
		Updates(medicine)
	if result.Error != nil {
		return fmt.Errorf("failed to update medicine record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *medicineRepository) Delete(ctx context.Context, id int) error {
	result := database.DB.WithContext(ctx).Delete(&models.Medicine{}, "med_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete medicine record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
