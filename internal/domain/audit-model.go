package domain

import "time"

// AuditLog is append-only: rows are written by the audit middleware and never
// updated or deleted by the application.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Ts         time.Time `gorm:"autoCreateTime;index" json:"ts"`
	UserID     *uint     `json:"user_id,omitempty"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	Path       string    `gorm:"type:varchar(500);not null" json:"path"`
	StatusCode int       `gorm:"not null" json:"status_code"`
	IP         *string   `gorm:"type:varchar(64)" json:"ip,omitempty"`
}
