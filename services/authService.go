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

// Authentication errors surfaced to the login form.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotApproved    = errors.New("account pending approval")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) error
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
	GetUserByUUID(ctx context.Context, uuid string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserProfile(ctx context.Context, uuid, screenname, email string) error
	ApproveUser(ctx context.Context, uuid string, approved bool) error
	DeleteUser(ctx context.Context, uuid string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, resetCode, newPassword string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// RegisterUser creates a login. New accounts start as unapproved STAFF; the
// doctor flips approval from the user administration screen.
func (s *userService) RegisterUser(ctx context.Context, user *models.User) error {
	lockKey := fmt.Sprintf("user_lock:%s", user.Email)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if err := utils.ValidateUserData(*user); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}

	if exists, err := s.userRepo.EmailExists(ctx, user.Email); err != nil || exists {
		return errors.New("email already registered")
	}

	if user.Role == "" {
		user.Role = models.RoleStaff
	}
	if !models.ValidRole(user.Role) {
		return fmt.Errorf("invalid role: %q", user.Role)
	}

	hashedPassword, err := utils.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashedPassword
	user.UUID = uuid.New().String()

	return s.userRepo.Create(ctx, user)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, ErrUserNotApproved
	}

	return user, nil
}

func (s *userService) GetUserByUUID(ctx context.Context, uuid string) (*models.User, error) {
	user, err := s.userRepo.GetByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) UpdateUserProfile(ctx context.Context, userUUID, screenname, email string) error {
	lockKey := fmt.Sprintf("user_lock:%s", userUUID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	user, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if email != user.Email {
		if exists, err := s.userRepo.EmailExists(ctx, email); err != nil || exists {
			return errors.New("email already registered")
		}
	}

	return s.userRepo.UpdateProfile(ctx, userUUID, screenname, email)
}

func (s *userService) ApproveUser(ctx context.Context, uuid string, approved bool) error {
	return s.userRepo.UpdateApproval(ctx, uuid, approved)
}

func (s *userService) DeleteUser(ctx context.Context, uuid string) error {
	return s.userRepo.Delete(ctx, uuid)
}

// RequestPasswordReset generates a short-lived code and emails it. A missing
// account is reported the same as a successful send so the endpoint cannot
// be used to probe for registered emails.
func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := utils.SendResetCodeEmail(email, code); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return err
	}

	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != resetCode {
		return utils.ErrInvalidResetCode
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UUID, hashedPassword); err != nil {
		return err
	}

	if err := utils.DeleteResetCode(ctx, email); err != nil {
		log.Printf("Failed to delete reset code: %v", err)
	}
	return nil
}
