package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedDefaultData(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaultData(db))

	var settingsCount int64
	require.NoError(t, db.Model(&entity.Setting{}).Count(&settingsCount).Error)
	assert.Equal(t, int64(len(DefaultSettings)), settingsCount)

	var companyName entity.Setting
	require.NoError(t, db.First(&companyName, "key = ?", "company_name").Error)
	assert.Equal(t, DefaultSettings["company_name"], companyName.Value)

	var admin entity.User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("admin", admin.Password))
}

func TestSeedDefaultDataIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaultData(db))

	// Operator edits survive a restart's re-seed
	require.NoError(t, db.Model(&entity.Setting{}).
		Where("key = ?", "company_name").
		Update("value", "Epicerie Mahefa").Error)

	require.NoError(t, SeedDefaultData(db))

	var companyName entity.Setting
	require.NoError(t, db.First(&companyName, "key = ?", "company_name").Error)
	assert.Equal(t, "Epicerie Mahefa", companyName.Value)

	var users int64
	require.NoError(t, db.Model(&entity.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}
