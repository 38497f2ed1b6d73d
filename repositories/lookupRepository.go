package repositories

import (
	"MedicareClinic/cache"
	"MedicareClinic/database"
	"MedicareClinic/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const lookupCacheTTL = 12 * time.Hour

type LookupRepository interface {
	ListValues(ctx context.Context, kind models.LookupKind) ([]string, error)
	AddValue(ctx context.Context, kind models.LookupKind, value string) (*models.CustomOption, error)
	DeleteValue(ctx context.Context, kind models.LookupKind, id uint) error
}

type lookupRepository struct {
	cache *cache.Cache
}

func NewLookupRepository(cache *cache.Cache) LookupRepository {
	return &lookupRepository{cache: cache}
}

func lookupCacheKey(kind models.LookupKind) string {
	return fmt.Sprintf("lookup_cache:%s", kind)
}

// ListValues returns the clinic-added values for a kind, oldest first.
func (r *lookupRepository) ListValues(ctx context.Context, kind models.LookupKind) ([]string, error) {
	table, err := models.LookupTable(kind)
	if err != nil {
		return nil, err
	}

	cached, err := r.cache.Get(ctx, lookupCacheKey(kind))
	if err == nil && cached != "" {
		var values []string
		if err := json.Unmarshal([]byte(cached), &values); err == nil {
			return values, nil
		}
	}

	var values []string
	err = database.DB.WithContext(ctx).Table(table).
		Order("id ASC").
		Pluck("value", &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list custom %s options: %w", kind, err)
	}

	if data, err := json.Marshal(values); err == nil {
		if err := r.cache.Set(ctx, lookupCacheKey(kind), string(data), lookupCacheTTL); err != nil {
			log.Printf("Failed to cache %s options: %v", kind, err)
		}
	}
	return values, nil
}

func (r *lookupRepository) AddValue(ctx context.Context, kind models.LookupKind, value string) (*models.CustomOption, error) {
	table, err := models.LookupTable(kind)
	if err != nil {
		return nil, err
	}

	option := models.CustomOption{Value: value}
	if err := database.DB.WithContext(ctx).Table(table).Create(&option).Error; err != nil {
		return nil, fmt.Errorf("failed to add custom %s option: %w", kind, err)
	}

	if err := r.cache.Delete(ctx, lookupCacheKey(kind)); err != nil {
		log.Printf("Failed to invalidate %s options cache: %v", kind, err)
	}
	return &option, nil
}

func (r *lookupRepository) DeleteValue(ctx context.Context, kind models.LookupKind, id uint) error {
	table, err := models.LookupTable(kind)
	if err != nil {
		return err
	}

	result := database.DB.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Delete(&models.CustomOption{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete custom %s option: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.cache.Delete(ctx, lookupCacheKey(kind)); err != nil {
		log.Printf("Failed to invalidate %s options cache: %v", kind, err)
	}
	return nil
}
