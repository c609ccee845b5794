package models

import "time"

// Conventional invoice statuses. The column is free-form text; these are the
// values the UI offers.
const (
	InvoiceStatusDraft   = "Draft"
	InvoiceStatusUnpaid  = "Unpaid"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

// Invoice is the ledger header. TotalAmount is denormalized and supplied by
// the caller; the engine never recomputes it from items.
type Invoice struct {
	ID            uint          `gorm:"primaryKey"`
	InvoiceNumber string        `gorm:"size:50;uniqueIndex;not null"`
	CustomerID    *uint         `gorm:"index"`
	Customer      *Customer     `gorm:"foreignKey:CustomerID"`
	InvoiceDate   time.Time
	DueDate       time.Time
	TotalAmount   float64
	Status        string `gorm:"size:50"`
	CreatedAt     time.Time
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// InvoiceItem is one line of an invoice. ProductID is nil for ad-hoc lines
// (free text, no stock tracking). LineTotal is quantity times unit price with
// the discount already applied by the caller.
type InvoiceItem struct {
	ID          uint     `gorm:"primaryKey"`
	InvoiceID   uint     `gorm:"index;not null"`
	ProductID   *uint    `gorm:"index"`
	Product     *Product `gorm:"foreignKey:ProductID"`
	Description string
	Quantity    float64  `gorm:"not null"`
	UnitPrice   float64  `gorm:"not null"`
	Discount    float64  `gorm:"not null;default:0"` // percentage, 0-100
	LineTotal   float64  `gorm:"not null"`
}
