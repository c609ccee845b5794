package models

import "time"

// Customer is a billing contact. Invoices reference it optionally; nothing
// else in the core depends on it.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Address   string
	TaxNumber string `gorm:"size:100"`
	CreatedAt time.Time
}
