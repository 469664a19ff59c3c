package api

import (
	"testing"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestSeedIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	cfg := testConfig()
	require.NoError(t, Seed(db, cfg))
	require.NoError(t, Seed(db, cfg))

	var roleCount int64
	require.NoError(t, db.Model(&domain.Role{}).Count(&roleCount).Error)
	assert.Equal(t, int64(3), roleCount)

	var adminCount int64
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", cfg.FirstAdminEmail).Count(&adminCount).Error)
	assert.Equal(t, int64(1), adminCount)

	var admin domain.User
	require.NoError(t, db.Where("email = ?", cfg.FirstAdminEmail).First(&admin).Error)
	assert.True(t, admin.IsActive)

	var links int64
	require.NoError(t, db.Model(&domain.UserRole{}).Where("user_id = ?", admin.ID).Count(&links).Error)
	assert.Equal(t, int64(1), links)
}
