package services

import (
	"MedicareClinic/models"
	"MedicareClinic/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func userWithPassword(t *testing.T, password string, approved bool) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	assert.NoError(t, err)
	return &models.User{
		UUID:       "u-1",
		Email:      "desk@clinic.test",
		Screenname: "reception",
		Password:   hashed,
		Role:       models.RoleStaff,
		Approved:   approved,
	}
}

func TestAuthenticateUser(t *testing.T) {
	stored := userWithPassword(t, "Sufficient1!", true)
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	service := NewUserService(repo)

	user, err := service.AuthenticateUser(context.Background(), "desk@clinic.test", "Sufficient1!")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", user.UUID)

	_, err = service.AuthenticateUser(context.Background(), "desk@clinic.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.AuthenticateUser(context.Background(), "nobody@clinic.test", "Sufficient1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUserRequiresApproval(t *testing.T) {
	stored := userWithPassword(t, "Sufficient1!", false)
	repo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return stored, nil
		},
	}
	service := NewUserService(repo)

	_, err := service.AuthenticateUser(context.Background(), stored.Email, "Sufficient1!")
	assert.ErrorIs(t, err, ErrUserNotApproved)
}
