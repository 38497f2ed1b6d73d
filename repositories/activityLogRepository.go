package repositories

import (
	"MedicareClinic/database"
	"MedicareClinic/models"
	"context"
	"fmt"
	"time"
)

// ActivityLogFilter narrows and pages the audit-trail listing.
type ActivityLogFilter struct {
	UserUUID string
	DateFrom string
	DateTo   string
	Page     int
	PerPage  int
}

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]models.ActivityLog, int64, error)
}

type activityLogRepository struct{}

func NewActivityLogRepository() ActivityLogRepository {
	return &activityLogRepository{}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	if err := database.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *activityLogRepository) List(ctx context.Context, filter ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if filter.UserUUID != "" {
		query = query.Where("user_uuid = ?", filter.UserUUID)
	}
	if filter.DateFrom != "" {
		query = query.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		// Date-only upper bounds are inclusive of the whole day.
		query = query.Where("created_at < (?::date + interval '1 day')", filter.DateTo)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	var entries []models.ActivityLog
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}

	return entries, count, nil
}
