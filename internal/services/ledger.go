package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/nouralabs/accounting/internal/models"
	"gorm.io/gorm"
)

// LedgerService owns the invoice/stock ledger. Its three verbs each run in a
// single transaction: either the invoice, its items, and every stock
// adjustment land together, or nothing does.
//
// The service assumes one active writer (desktop app, one window). Callers
// running verbs off the UI thread must serialize access to the handle.
type LedgerService struct{ DB *gorm.DB }

func NewLedgerService(db *gorm.DB) *LedgerService { return &LedgerService{DB: db} }

// Create validates stock for every product-referencing item, then persists
// the header, its items, and the stock debits as one unit. Returns the new
// invoice id.
func (s *LedgerService) Create(header models.Invoice, items []models.InvoiceItem) (uint, error) {
	if strings.TrimSpace(header.InvoiceNumber) == "" {
		return 0, ErrNumberRequired
	}
	header.ID = 0
	header.CreatedAt = time.Now().UTC()
	header.Items = nil

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := validateStock(tx, items); err != nil {
			return err
		}
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		if err := insertItems(tx, header.ID, items); err != nil {
			return err
		}
		return debitStock(tx, items)
	})
	if err != nil {
		return 0, err
	}
	return header.ID, nil
}

// Update replaces the invoice header and its full item set. Stock is first
// credited back for the current items, so the new set is validated against
// replenished levels; a rejected update therefore rolls back to a net-zero
// stock effect.
func (s *LedgerService) Update(id uint, header models.Invoice, items []models.InvoiceItem) error {
	if strings.TrimSpace(header.InvoiceNumber) == "" {
		return ErrNumberRequired
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Invoice
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		var oldItems []models.InvoiceItem
		if err := tx.Where("invoice_id = ?", id).Find(&oldItems).Error; err != nil {
			return err
		}
		// Credit before validating: the new set may reuse the very stock the
		// old set holds.
		if err := creditStock(tx, oldItems); err != nil {
			return err
		}
		if err := validateStock(tx, items); err != nil {
			return err
		}
		if err := tx.Model(&models.Invoice{}).Where("id = ?", id).
			Select("InvoiceNumber", "CustomerID", "InvoiceDate", "DueDate", "TotalAmount", "Status").
			Updates(models.Invoice{
				InvoiceNumber: header.InvoiceNumber,
				CustomerID:    header.CustomerID,
				InvoiceDate:   header.InvoiceDate,
				DueDate:       header.DueDate,
				TotalAmount:   header.TotalAmount,
				Status:        header.Status,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := insertItems(tx, id, items); err != nil {
			return err
		}
		return debitStock(tx, items)
	})
}

// Delete removes the invoice and its items after crediting stock back for
// every product-referencing item.
func (s *LedgerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Invoice
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		var items []models.InvoiceItem
		if err := tx.Where("invoice_id = ?", id).Find(&items).Error; err != nil {
			return err
		}
		if err := creditStock(tx, items); err != nil {
			return err
		}
		// Items deleted explicitly rather than through the FK cascade so the
		// behavior is the same on every configured driver.
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, id).Error
	})
}

// Get returns full invoice detail for display and export: header, customer
// fields, and items with their products resolved. Pure read.
func (s *LedgerService) Get(id uint) (models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.Preload("Customer").Preload("Items.Product").First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	return inv, err
}

// List returns all invoices newest-first with customer names resolved.
func (s *LedgerService) List() ([]models.Invoice, error) {
	var out []models.Invoice
	err := s.DB.Preload("Customer").Order("id desc").Find(&out).Error
	return out, err
}

// productQuantities sums requested quantities per referenced product,
// checking the whole-number policy along the way. Ad-hoc lines (nil product)
// are skipped.
func productQuantities(items []models.InvoiceItem) (map[uint]int64, error) {
	totals := make(map[uint]int64)
	for _, it := range items {
		if it.ProductID == nil {
			continue
		}
		if it.Quantity != math.Trunc(it.Quantity) {
			return nil, &FractionalQuantityError{ProductID: *it.ProductID, Quantity: it.Quantity}
		}
		totals[*it.ProductID] += int64(it.Quantity)
	}
	return totals, nil
}

// validateStock rejects the whole item set if any referenced product is
// missing or would go below zero stock.
func validateStock(tx *gorm.DB, items []models.InvoiceItem) error {
	totals, err := productQuantities(items)
	if err != nil {
		return err
	}
	for pid, qty := range totals {
		var p models.Product
		if err := tx.First(&p, pid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{ProductID: pid}
			}
			return err
		}
		if p.Stock < qty {
			return &StockInsufficientError{ProductID: pid, Name: p.Name, Available: p.Stock, Requested: qty}
		}
	}
	return nil
}

func debitStock(tx *gorm.DB, items []models.InvoiceItem) error {
	totals, err := productQuantities(items)
	if err != nil {
		return err
	}
	for pid, qty := range totals {
		if qty == 0 {
			continue
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", pid).
			Update("stock", gorm.Expr("stock - ?", qty)).Error; err != nil {
			return err
		}
	}
	return nil
}

func creditStock(tx *gorm.DB, items []models.InvoiceItem) error {
	totals, err := productQuantities(items)
	if err != nil {
		return err
	}
	for pid, qty := range totals {
		if qty == 0 {
			continue
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", pid).
			Update("stock", gorm.Expr("stock + ?", qty)).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertItems(tx *gorm.DB, invoiceID uint, items []models.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]models.InvoiceItem, len(items))
	for i, it := range items {
		it.ID = 0
		it.InvoiceID = invoiceID
		it.Product = nil
		rows[i] = it
	}
	return tx.Create(&rows).Error
}
