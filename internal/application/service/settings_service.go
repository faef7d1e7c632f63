package service

import (
	"context"
	"strings"

	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

// SettingsService manages the key/value application settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns every stored setting as a key/value map
func (s *SettingsService) GetSettings(ctx context.Context) (map[string]string, error) {
	return s.settingsRepo.GetAll(ctx)
}

// GetSetting returns a single setting value
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	value, found, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperror.NewNotFoundError("Setting")
	}
	return value, nil
}

// UpdateSettings upserts the given key/value pairs. Unknown keys are
// accepted; the client owns the settings vocabulary.
func (s *SettingsService) UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "settings", Message: "at least one setting is required"},
		})
	}

	for key := range values {
		if strings.TrimSpace(key) == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "settings", Message: "setting keys must not be empty"},
			})
		}
	}

	for key, value := range values {
		if err := s.settingsRepo.Set(ctx, strings.TrimSpace(key), value); err != nil {
			return nil, err
		}
	}

	return s.settingsRepo.GetAll(ctx)
}
