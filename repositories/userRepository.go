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
	UserCacheExpiry = 7 * 24 * time.Hour
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUUID(ctx context.Context, uuid string) (*models.User, error)
	GetByUUIDs(ctx context.Context, uuids []string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, uuid, screenname, email string) error
	UpdatePassword(ctx context.Context, uuid, hashedPassword string) error
	UpdateApproval(ctx context.Context, uuid string, approved bool) error
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, uuid string) error
	DeleteCache(ctx context.Context, identifier string) error
}

type userRepository struct {
	cache *cache.Cache
}

func NewUserRepository(cache *cache.Cache) UserRepository {
	return &userRepository{cache: cache}
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := database.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getUserCacheKey(uuid)
	cachedUser, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedUser != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cachedUser), &user); err == nil {
			return &user, nil
		}
	}

	var user models.User
	err = database.DB.WithContext(ctx).
		Select("uuid, email, screenname, role, approved, created_at").
		Where("uuid = ?", uuid).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if userJSON, err := json.Marshal(user); err == nil {
		if err := r.cache.Set(ctx, cacheKey, userJSON, UserCacheExpiry); err != nil {
			log.Printf("Failed to set user in cache: %v", err)
		}
	}

	return &user, nil
}

func (r *userRepository) GetByUUIDs(ctx context.Context, uuids []string) ([]models.User, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := database.DB.WithContext(ctx).
		Select("uuid, email, screenname, role, approved, created_at").
		Where("uuid IN ?", uuids).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := database.DB.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, uuid, screenname, email string) error {
	err := database.DB.WithContext(ctx).Model(&models.User{}).
		Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"screenname": screenname,
			"email":      email,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return r.DeleteCache(ctx, uuid)
}

func (r *userRepository) UpdatePassword(ctx context.Context, uuid, hashedPassword string) error {
	err := database.DB.WithContext(ctx).Model(&models.User{}).
		Where("uuid = ?", uuid).
		Update("password", hashedPassword).Error
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	return r.DeleteCache(ctx, uuid)
}

func (r *userRepository) UpdateApproval(ctx context.Context, uuid string, approved bool) error {
	result := database.DB.WithContext(ctx).Model(&models.User{}).
		Where("uuid = ?", uuid).
		Update("approved", approved)
	if result.Error != nil {
		return fmt.Errorf("failed to update user approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.DeleteCache(ctx, uuid)
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var users []models.User
	err := database.DB.WithContext(ctx).
		Select("uuid, email, screenname, role, approved, created_at").
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, uuid string) error {
	result := database.DB.WithContext(ctx).Delete(&models.User{}, "uuid = ?", uuid)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.DeleteCache(ctx, uuid)
}

func (r *userRepository) DeleteCache(ctx context.Context, identifier string) error {
	return r.cache.Delete(ctx, r.getUserCacheKey(identifier))
}

func (r *userRepository) getUserCacheKey(identifier string) string {
	return fmt.Sprintf("user_cache:%s", identifier)
}
