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

// VisitFilter narrows and pages the visit ledger listing.
type VisitFilter struct {
	Name             string
	DateFrom         string
	DateTo           string
	ConsultationType string
	Page             int
	PerPage          int
}

type VisitRepository interface {
	MaxID(ctx context.Context) (int, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Insert(ctx context.Context, visit *models.Visit) error
	GetByID(ctx context.Context, id int) (*models.Visit, error)
	List(ctx context.Context, filter VisitFilter) ([]models.Visit, int64, error)
	ListByPatient(ctx context.Context, patientID int) ([]models.Visit, error)
	ListAll(ctx context.Context) ([]models.Visit, error)
	ListByDate(ctx context.Context, date string) ([]models.Visit, error)
	Update(ctx context.Context, visit *models.Visit) error
	Delete(ctx context.Context, id int) error
}

type visitRepository struct{}

func NewVisitRepository() VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) MaxID(ctx context.Context) (int, error) {
	var maxID int
	err := database.DB.WithContext(ctx).Model(&models.Visit{}).
		Select("COALESCE(MAX(visit_id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max visit id: %w", err)
	}
	return maxID, nil
}

func (r *visitRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Visit{}).
		Where("phone_no = ?", phone).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check prior visits: %w", err)
	}
	return count > 0, nil
}

func (r *visitRepository) Insert(ctx context.Context, visit *models.Visit) error {
	if err := database.DB.WithContext(ctx).Create(visit).Error; err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

func (r *visitRepository) GetByID(ctx context.Context, id int) (*models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var visit models.Visit
	err := database.DB.WithContext(ctx).First(&visit, "visit_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return &visit, nil
}

func (r *visitRepository) List(ctx context.Context, filter VisitFilter) ([]models.Visit, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).Model(&models.Visit{})
	if filter.Name != "" {
		query = query.Where("fullname ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}
	if filter.ConsultationType != "" && filter.ConsultationType != "All" {
		query = query.Where("consultation_type = ?", filter.ConsultationType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count visits: %w", err)
	}

	var visits []models.Visit
	err := query.Order("visit_id DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&visits).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visits: %w", err)
	}

	return visits, count, nil
}

func (r *visitRepository) ListByPatient(ctx context.Context, patientID int) ([]models.Visit, error) {
	var visits []models.Visit
	err := database.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visits for patient: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ListAll(ctx context.Context) ([]models.Visit, error) {
	var visits []models.Visit
	err := database.DB.WithContext(ctx).
		Select("visit_id, date, consultation_fee, drug_fee, procedure_fee, new_old, payment_method, referral").
		Order("date DESC").
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ListByDate(ctx context.Context, date string) ([]models.Visit, error) {
	var visits []models.Visit
	err := database.DB.WithContext(ctx).
		Where("date = ?", date).
		Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visits by date: %w", err)
	}
	return visits, nil
}

// Update edits a visit in place. The new_old tag is computed once at insert
// time and is excluded here so edits can never rewrite history.
func (r *visitRepository) Update(ctx context.Context, visit *models.Visit) error {
	result := database.DB.WithContext(ctx).Model(&models.Visit{}).
		Where("visit_id = ?", visit.VisitID).
		Select("date", "consultation_type", "consultation_fee", "drug_fee", "procedure_fee",
			"extra_procedures", "payment_method", "referral", "weight", "blood_pressure", "pulse").
		Updates(visit)
	if result.Error != nil {
		return fmt.Errorf("failed to update visit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *visitRepository) Delete(ctx context.Context, id int) error {
	result := database.DB.WithContext(ctx).Delete(&models.Visit{}, "visit_id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete visit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
