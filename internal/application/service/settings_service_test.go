package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/fandresena/gereo-server/internal/infrastructure/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

func TestUpdateSettingsUpserts(t *testing.T) {
	env := newTestEnv(t)
	settings := NewSettingsService(infraRepo.NewSettingsRepository(env.db))

	result, err := settings.UpdateSettings(context.Background(), map[string]string{
		"company_name":  "Epicerie Mahefa",
		"company_phone": "034 00 000 00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Epicerie Mahefa", result["company_name"])

	// Upserting again overwrites the value in place
	result, err = settings.UpdateSettings(context.Background(), map[string]string{
		"company_name": "Epicerie Mahefa II",
	})
	require.NoError(t, err)
	assert.Equal(t, "Epicerie Mahefa II", result["company_name"])
	assert.Equal(t, "034 00 000 00", result["company_phone"])

	value, err := settings.GetSetting(context.Background(), "company_name")
	require.NoError(t, err)
	assert.Equal(t, "Epicerie Mahefa II", value)
}

func TestUpdateSettingsValidation(t *testing.T) {
	env := newTestEnv(t)
	settings := NewSettingsService(infraRepo.NewSettingsRepository(env.db))

	_, err := settings.UpdateSettings(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = settings.UpdateSettings(context.Background(), map[string]string{"  ": "x"})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestGetSettingUnknownKey(t *testing.T) {
	env := newTestEnv(t)
	settings := NewSettingsService(infraRepo.NewSettingsRepository(env.db))

	_, err := settings.GetSetting(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
