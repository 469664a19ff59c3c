package domain

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     *string   `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	// no gorm default here: a default on a bool makes Create drop false values
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
