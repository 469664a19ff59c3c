package repository

import (
	"github.com/handmadefactory/backend/internal/domain"
	"gorm.io/gorm"
)

type UserRoleRepository interface {
	AddRole(userID, roleID uint) error
	GetRoleNamesByUserID(userID uint) ([]string, error)
}

type userRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: db}
}

// AddRole grants a role; granting one the user already holds is a no-op, so
// the effective role set stays duplicate-free.
func (ur *userRoleRepository) AddRole(userID, roleID uint) error {
	link := domain.UserRole{UserID: userID, RoleID: roleID}
	return ur.db.Where(link).FirstOrCreate(&link).Error
}

func (ur *userRoleRepository) GetRoleNamesByUserID(userID uint) ([]string, error) {
	var names []string
	err := ur.db.
		Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
