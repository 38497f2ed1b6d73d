package services

import (
	"MedicareClinic/models"
	"MedicareClinic/repositories"
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrEmptyLookupValue is returned when a custom option is blank after
// trimming.
var ErrEmptyLookupValue = errors.New("option value cannot be empty")

type LookupService struct {
	lookupRepo repositories.LookupRepository
}

func NewLookupService(lookupRepo repositories.LookupRepository) *LookupService {
	return &LookupService{lookupRepo: lookupRepo}
}

// Options returns the full dropdown list for a kind: the built-in base list
// unioned with the clinic's custom additions.
func (s *LookupService) Options(ctx context.Context, kind models.LookupKind) ([]string, error) {
	custom, err := s.lookupRepo.ListValues(ctx, kind)
	if err != nil {
		return nil, err
	}
	return MergeOptions(models.BaseOptions(kind), custom), nil
}

func (s *LookupService) AddOption(ctx context.Context, kind models.LookupKind, value string) (*models.CustomOption, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, ErrEmptyLookupValue
	}
	return s.lookupRepo.AddValue(ctx, kind, trimmed)
}

func (s *LookupService) DeleteOption(ctx context.Context, kind models.LookupKind, id uint) error {
	return s.lookupRepo.DeleteValue(ctx, kind, id)
}

// MergeOptions unions the base list with custom values, deduplicating
// case-insensitively (the first spelling seen wins) and sorting the result.
func MergeOptions(base, custom []string) []string {
	seen := make(map[string]struct{}, len(base)+len(custom))
	merged := make([]string, 0, len(base)+len(custom))
	for _, list := range [][]string{base, custom} {
		for _, value := range list {
			key := strings.ToLower(strings.TrimSpace(value))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, value)
		}
	}
	sort.Strings(merged)
	return merged
}
