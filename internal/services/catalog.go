package services

import (
	"strings"
	"time"

	"github.com/nouralabs/accounting/internal/models"
	"gorm.io/gorm"
)

// CatalogService is plain CRUD over customers and products. It enforces no
// cross-entity invariants; product stock belongs to the ledger. Deleting a
// row still referenced by invoices is left to the store's foreign keys, and
// any constraint violation is surfaced unchanged.
type CatalogService struct{ DB *gorm.DB }

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{DB: db} }

// Customers

func (s *CatalogService) CreateCustomer(c models.Customer) (uint, error) {
	if strings.TrimSpace(c.Name) == "" {
		return 0, ErrNameRequired
	}
	c.ID = 0
	c.CreatedAt = time.Now().UTC()
	if err := s.DB.Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

// UpdateCustomer replaces all mutable fields. An unknown id affects zero
// rows and is not an error; callers needing a stronger guarantee check
// existence first.
func (s *CatalogService) UpdateCustomer(id uint, c models.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	return s.DB.Model(&models.Customer{}).Where("id = ?", id).
		Select("Name", "Email", "Phone", "Address", "TaxNumber").
		Updates(models.Customer{
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
			TaxNumber: c.TaxNumber,
		}).Error
}

func (s *CatalogService) DeleteCustomer(id uint) error {
	return s.DB.Delete(&models.Customer{}, id).Error
}

func (s *CatalogService) GetCustomer(id uint) (models.Customer, error) {
	var c models.Customer
	err := s.DB.First(&c, id).Error
	return c, err
}

func (s *CatalogService) ListCustomers() ([]models.Customer, error) {
	var out []models.Customer
	err := s.DB.Order("id desc").Find(&out).Error
	return out, err
}

// Products

func (s *CatalogService) CreateProduct(p models.Product) (uint, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, ErrNameRequired
	}
	p.ID = 0
	p.CreatedAt = time.Now().UTC()
	syncPrices(&p)
	if err := s.DB.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdateProduct replaces the catalog fields, stock included: direct stock
// edits are a catalog concern, only invoice-driven adjustments go through
// the ledger.
func (s *CatalogService) UpdateProduct(id uint, p models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	syncPrices(&p)
	return s.DB.Model(&models.Product{}).Where("id = ?", id).
		Select("Name", "Description", "UnitPrice", "CostPrice", "SalePrice", "Stock", "Unit").
		Updates(models.Product{
			Name:        p.Name,
			Description: p.Description,
			UnitPrice:   p.UnitPrice,
			CostPrice:   p.CostPrice,
			SalePrice:   p.SalePrice,
			Stock:       p.Stock,
			Unit:        p.Unit,
		}).Error
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.DB.Delete(&models.Product{}, id).Error
}

func (s *CatalogService) GetProduct(id uint) (models.Product, error) {
	var p models.Product
	err := s.DB.First(&p, id).Error
	return p, err
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var out []models.Product
	err := s.DB.Order("id desc").Find(&out).Error
	return out, err
}

// Older schema versions only knew unit_price; the two columns are kept in
// lockstep, sale_price winning when they disagree.
func syncPrices(p *models.Product) {
	if p.SalePrice != 0 {
		p.UnitPrice = p.SalePrice
	} else {
		p.SalePrice = p.UnitPrice
	}
}
