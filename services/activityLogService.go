package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"context"
	"log"
)

// ActivityLogEntry is a log row enriched with the acting user's details for
// display.
type ActivityLogEntry struct {
	models.ActivityLog
	Screenname string `json:"screenname"`
	Email      string `json:"email"`
}

type ActivityLogService struct {
	activityLogRepo repositories.ActivityLogRepository
	userRepo        repositories.UserRepository
}

func NewActivityLogService(activityLogRepo repositories.ActivityLogRepository, userRepo repositories.UserRepository) *ActivityLogService {
	return &ActivityLogService{activityLogRepo: activityLogRepo, userRepo: userRepo}
}

// Record appends an audit entry. Logging is best-effort: a failure here must
// never fail the operation being logged.
func (s *ActivityLogService) Record(ctx context.Context, userUUID, action string) {
	if userUUID == "" || action == "" {
		return
	}
	entry := models.ActivityLog{UserUUID: userUUID, Action: action}
	if err := s.activityLogRepo.Insert(ctx, &entry); err != nil {
		log.Printf("Failed to record activity: %v", err)
	}
}

// List returns a page of audit entries, newest first, each enriched with the
// acting user's screenname and email. Entries whose user has since been
// deleted keep the bare UUID.
func (s *ActivityLogService) List(ctx context.Context, filter repositories.ActivityLogFilter) ([]ActivityLogEntry, int64, error) {
	logs, count, err := s.activityLogRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	uuidSet := make(map[string]struct{}, len(logs))
	uuids := make([]string, 0, len(logs))
	for _, entry := range logs {
		if _, ok := uuidSet[entry.UserUUID]; !ok {
			uuidSet[entry.UserUUID] = struct{}{}
			uuids = append(uuids, entry.UserUUID)
		}
	}

	users, err := s.userRepo.GetByUUIDs(ctx, uuids)
	if err != nil {
		return nil, 0, err
	}
	byUUID := make(map[string]models.User, len(users))
	for _, user := range users {
		byUUID[user.UUID] = user
	}

	entries := make([]ActivityLogEntry, 0, len(logs))
	for _, entry := range logs {
		enriched := ActivityLogEntry{ActivityLog: entry}
		if user, ok := byUUID[entry.UserUUID]; ok {
			enriched.Screenname = user.Screenname
			enriched.Email = user.Email
		}
		entries = append(entries, enriched)
	}

	return entries, count, nil
}
