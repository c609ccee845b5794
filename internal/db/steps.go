package db

import (
	"errors"
	"log/slog"

	"github.com/nouralabs/accounting/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Development-only default administrator, seeded when no admin rows exist.
// Production installs are expected to change these on first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminLicense  = "NOURA-TRIAL"
)

// steps run in order; versions sort lexicographically. Append only — never
// edit or reorder a released step.
var steps = []step{
	{"20240105_create_base_tables", createBaseTables},
	{"20240412_backfill_sale_price", backfillSalePrice},
	{"20240413_seed_settings", seedSettings},
	{"20240413_seed_admin", seedAdmin},
}

// Seed ensures the singleton settings row and at least one admin exist.
// Safe to run any number of times; normally the migration steps already did
// this, the CLI exposes it for repairing a hand-edited database.
func Seed(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := seedSettings(tx); err != nil {
			return err
		}
		return seedAdmin(tx)
	})
}

func createBaseTables(tx *gorm.DB) error {
	// AutoMigrate is additive: it creates missing tables and adds missing
	// columns with their declared defaults, and never drops or renames.
	// That also covers databases created by older app versions.
	if err := tx.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Settings{},
		&models.AdminUser{},
	); err != nil {
		return err
	}
	for _, table := range []string{"customers", "products", "invoices", "invoice_items", "settings", "admin_users"} {
		if !tx.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// Older databases only carried unit_price; sale_price arrived later with a
// zero default. Copy unit_price into it so both columns agree.
func backfillSalePrice(tx *gorm.DB) error {
	return tx.Model(&models.Product{}).
		Where("sale_price = 0 AND unit_price <> 0").
		Update("sale_price", gorm.Expr("unit_price")).Error
}

func seedSettings(tx *gorm.DB) error {
	var existing models.Settings
	err := tx.First(&existing, models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultSettings()
		return tx.Create(&def).Error
	}
	return err
}

func seedAdmin(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.AdminUser{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		LicenseKey:   DefaultAdminLicense,
		Active:       true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return err
	}
	slog.Warn("seeded default admin credentials; change them before going live",
		"username", DefaultAdminUsername)
	return nil
}
