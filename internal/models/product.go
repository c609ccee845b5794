package models

import "time"

// Product is a sellable article with a tracked stock count.
//
// UnitPrice and SalePrice hold the same value: older database versions only
// knew unit_price, so both columns are written on every save. Stock is the
// single field the ledger mutates; everything else changes only through
// catalog edits.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string
	UnitPrice   float64 `gorm:"not null"`
	CostPrice   float64 `gorm:"not null;default:0"`
	SalePrice   float64 `gorm:"not null;default:0"`
	Stock       int64   `gorm:"not null;default:0"`
	Unit        string  `gorm:"size:50"` // e.g. hour, item
	CreatedAt   time.Time
}
