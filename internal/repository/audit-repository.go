package repository

import (
	"github.com/handmadefactory/backend/internal/domain"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(entry *domain.AuditLog) error
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(entry *domain.AuditLog) error {
	return r.db.Create(entry).Error
}
