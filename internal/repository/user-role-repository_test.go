package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Role{}, &domain.User{}, &domain.UserRole{}))
	return db
}

func TestAddRoleIsDuplicateFree(t *testing.T) {
	db := openTestDB(t)

	user := domain.User{Email: "editor@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	role := domain.Role{Name: domain.RoleEditor}
	require.NoError(t, db.Create(&role).Error)

	repo := NewUserRoleRepository(db)
	require.NoError(t, repo.AddRole(user.ID, role.ID))
	require.NoError(t, repo.AddRole(user.ID, role.ID))

	names, err := repo.GetRoleNamesByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleEditor}, names)
}

func TestGetRoleNamesByUserID(t *testing.T) {
	db := openTestDB(t)

	user := domain.User{Email: "multi@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	repo := NewUserRoleRepository(db)
	for _, name := range []string{domain.RoleAdmin, domain.RoleViewer} {
		role := domain.Role{Name: name}
		require.NoError(t, db.Create(&role).Error)
		require.NoError(t, repo.AddRole(user.ID, role.ID))
	}

	names, err := repo.GetRoleNamesByUserID(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domain.RoleAdmin, domain.RoleViewer}, names)

	none, err := repo.GetRoleNamesByUserID(9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
