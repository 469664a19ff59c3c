package api

import (
	"errors"
	"log"

	"github.com/handmadefactory/backend/config"
	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/helper"
	"gorm.io/gorm"
)

var defaultRoles = []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer}

// Seed makes sure the default roles and the bootstrap admin exist. The whole
// procedure runs in one transaction and is guarded by existence checks, so
// repeated startups converge on the same state.
func Seed(db *gorm.DB, cfg config.Config) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range defaultRoles {
			var role domain.Role
			err := tx.Where("name = ?", name).First(&role).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&domain.Role{Name: name}).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
		}

		var existing domain.User
		err := tx.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := helper.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		fullName := cfg.FirstAdminName
		admin := domain.User{
			Email:        cfg.FirstAdminEmail,
			FullName:     &fullName,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		var adminRole domain.Role
		if err := tx.Where("name = ?", domain.RoleAdmin).First(&adminRole).Error; err != nil {
			return err
		}
		if err := tx.Create(&domain.UserRole{UserID: admin.ID, RoleID: adminRole.ID}).Error; err != nil {
			return err
		}

		log.Printf("seeded bootstrap admin %s", cfg.FirstAdminEmail)
		return nil
	})
}
