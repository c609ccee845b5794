package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nouralabs/accounting/internal/db"
	"github.com/nouralabs/accounting/internal/models"
)

// setupTestDB opens a per-test in-memory sqlite database and runs the real
// migration steps, so every service test also exercises the schema store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	require.NoError(t, db.Migrate(gdb), "migrate")
	return gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, stock int64, salePrice, costPrice float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, UnitPrice: salePrice, SalePrice: salePrice, CostPrice: costPrice, Stock: stock, Unit: "item"}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func seedCustomer(t *testing.T, gdb *gorm.DB, name string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, Email: name + "@example.test"}
	require.NoError(t, gdb.Create(&c).Error)
	return c
}

func currentStock(t *testing.T, gdb *gorm.DB, productID uint) int64 {
	t.Helper()
	var p models.Product
	require.NoError(t, gdb.First(&p, productID).Error)
	return p.Stock
}
