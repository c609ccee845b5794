package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNameRequired     = errors.New("name is required")
	ErrNumberRequired   = errors.New("invoice number is required")
)

// StockInsufficientError rejects a ledger operation that would drive a
// product's stock below zero. It carries enough detail for the UI to tell the
// user exactly what to fix.
type StockInsufficientError struct {
	ProductID uint
	Name      string
	Available int64
	Requested int64
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (id %d): available %d, requested %d",
		e.Name, e.ProductID, e.Available, e.Requested)
}

// ProductNotFoundError rejects a line item referencing a product id that does
// not exist.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// FractionalQuantityError rejects a fractional quantity against a stocked
// product. Stock is an integer count; quantities on product lines must be
// whole numbers. Ad-hoc lines are free to use fractions.
type FractionalQuantityError struct {
	ProductID uint
	Quantity  float64
}

func (e *FractionalQuantityError) Error() string {
	return fmt.Sprintf("product %d: fractional quantity %g not allowed against integer stock", e.ProductID, e.Quantity)
}
