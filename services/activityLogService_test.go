package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityLogRecordSkipsBlankInput(t *testing.T) {
	inserted := 0
	repo := &MockActivityLogRepository{
		InsertFunc: func(ctx context.Context, entry *models.ActivityLog) error {
			inserted++
			return nil
		},
	}
	service := NewActivityLogService(repo, &MockUserRepository{})

	service.Record(context.Background(), "", "Deleted visit #3")
	service.Record(context.Background(), "user-1", "")
	assert.Equal(t, 0, inserted)

	service.Record(context.Background(), "user-1", "Deleted visit #3")
	assert.Equal(t, 1, inserted)
}

func TestActivityLogRecordSwallowsInsertErrors(t *testing.T) {
	repo := &MockActivityLogRepository{
		InsertFunc: func(ctx context.Context, entry *models.ActivityLog) error {
			return errors.New("connection refused")
		},
	}
	service := NewActivityLogService(repo, &MockUserRepository{})

	// Must not panic or propagate.
	service.Record(context.Background(), "user-1", "Recorded visit #9")
}

func TestActivityLogListEnrichesUsers(t *testing.T) {
	logRepo := &MockActivityLogRepository{
		ListFunc: func(ctx context.Context, filter repositories.ActivityLogFilter) ([]models.ActivityLog, int64, error) {
			return []models.ActivityLog{
				{LogID: 1, UserUUID: "u-1", Action: "Logged in"},
				{LogID: 2, UserUUID: "u-2", Action: "Registered patient #4 (Ravi)"},
				{LogID: 3, UserUUID: "u-1", Action: "Updated visit #8"},
			}, 3, nil
		},
	}
	userRepo := &MockUserRepository{
		GetByUUIDsFunc: func(ctx context.Context, uuids []string) ([]models.User, error) {
			assert.ElementsMatch(t, []string{"u-1", "u-2"}, uuids)
			return []models.User{
				{UUID: "u-1", Screenname: "reception", Email: "desk@clinic.test"},
			}, nil
		},
	}
	service := NewActivityLogService(logRepo, userRepo)

	entries, count, err := service.List(context.Background(), repositories.ActivityLogFilter{Page: 1, PerPage: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, entries, 3)
	assert.Equal(t, "reception", entries[0].Screenname)
	// A deleted user leaves the entry with the bare UUID.
	assert.Equal(t, "", entries[1].Screenname)
	assert.Equal(t, "u-2", entries[1].UserUUID)
}
