package models

import "time"

// AdminUser is a local administrator credential. The password is stored as a
// bcrypt hash; the license key is compared verbatim.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	LicenseKey   string `gorm:"size:100;not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
