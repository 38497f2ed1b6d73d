package repositories

import (
	"MedicareClinic/cache"
	"MedicareClinic/database"
	"MedicareClinic/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

// PatientFilter narrows and pages the registry listing.
type PatientFilter struct {
	Name    string
	Phone   string
	Sex     string
	Page    int
	PerPage int
}

type PatientRepository interface {
	MaxID(ctx context.Context) (int, error)
	Insert(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id int) (*models.Patient, error)
	GetByPhone(ctx context.Context, phone string) (*models.Patient, error)
	List(ctx context.Context, filter PatientFilter) ([]models.Patient, int64, error)
	NameExists(ctx context.Context, name string, excludeID int) (bool, error)
	Update(ctx context.Context, patient *models.Patient) error
	SetImage(ctx context.Context, id int, filename string) error
	Delete(ctx context.Context, id int) error
}

type patientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) PatientRepository {
	return &patientRepository{cache: cache}
}

func (r *patientRepository) MaxID(ctx context.Context) (int, error) {
	var maxID int
	err := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Select("COALESCE(MAX(patient_id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max patient id: %w", err)
	}
	return maxID, nil
}

func (r *patientRepository) Insert(ctx context.Context, patient *models.Patient) error {
	if err := database.DB.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "patient_cache:*"); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id int) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.WithContext(ctx).First(&patient, "patient_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *patientRepository) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	var patient models.Patient
	err := database.DB.WithContext(ctx).
		Where("phone_no = ?", phone).
		Order("patient_id").
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient by phone: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context, filter PatientFilter) ([]models.Patient, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).Model(&models.Patient{})
	if filter.Sex != "" && filter.Sex != "All" {
		query = query.Where("sex = ?", filter.Sex)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone_no ILIKE ?", "%"+filter.Phone+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	var patients []models.Patient
	err := query.Order("patient_id DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&patients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, count, nil
}

func (r *patientRepository) NameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	var count int64
	query := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("name ILIKE ?", name)
	if excludeID > 0 {
		query = query.Where("patient_id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check for existing patient name: %w", err)
	}
	return count > 0, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	result := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("patient_id = ?", patient.PatientID).
		Select("name", "sex", "phone_no", "year_of_birth", "hometown").
		Updates(patient)
	if result.Error != nil {
		return fmt.Errorf("failed to update patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.PatientID)); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return nil
}

func (r *patientRepository) SetImage(ctx context.Context, id int, filename string) error {
	result := database.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("patient_id = ?", id).
		Update("pic_filename", filename)
	if result.Error != nil {
		return fmt.Errorf("failed to set patient image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return nil
}

// Delete removes the patient row only. Visits and medicine records keep
// their denormalized copies and are never cascaded.
func (r *patientRepository) Delete(ctx context.Context, id int) error {
	result := database.DB.WithContext(ctx).Delete(&models.Patient{}, "patient_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		log.Printf("Failed to invalidate patient cache: %v", err)
	}
	return nil
}

func (r *patientRepository) getPatientCacheKey(id int) string {
	return fmt.Sprintf("patient_cache:%d", id)
}
