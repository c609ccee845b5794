package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nouralabs/accounting/internal/models"
)

func createInvoiceOn(t *testing.T, ledger *LedgerService, number string, date time.Time, total float64, status string, items []models.InvoiceItem) uint {
	t.Helper()
	id, err := ledger.Create(models.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   date,
		DueDate:       date.AddDate(0, 1, 0),
		TotalAmount:   total,
		Status:        status,
	}, items)
	require.NoError(t, err)
	return id
}

func TestTotalsSummary(t *testing.T) {
	gdb := setupTestDB(t)
	ledger := NewLedgerService(gdb)
	reports := NewReportService(gdb)
	seedCustomer(t, gdb, "Acme")
	seedCustomer(t, gdb, "Globex")
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	createInvoiceOn(t, ledger, "INV-1", date, 100, models.InvoiceStatusPaid, nil)
	createInvoiceOn(t, ledger, "INV-2", date, 50, models.InvoiceStatusPaid, nil)
	createInvoiceOn(t, ledger, "INV-3", date, 70, models.InvoiceStatusUnpaid, nil)
	createInvoiceOn(t, ledger, "INV-4", date, 30, "", nil)

	totals, err := reports.Totals()
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Customers)
	assert.Equal(t, int64(4), totals.Invoices)
	assert.InDelta(t, 250.0, totals.Revenue, 1e-9)
	assert.InDelta(t, 150.0, totals.StatusBreakdown[models.InvoiceStatusPaid], 1e-9)
	assert.InDelta(t, 70.0, totals.StatusBreakdown[models.InvoiceStatusUnpaid], 1e-9)
	assert.InDelta(t, 30.0, totals.StatusBreakdown["Unknown"], 1e-9)
}

func TestIncomeBuckets(t *testing.T) {
	gdb := setupTestDB(t)
	ledger := NewLedgerService(gdb)
	reports := NewReportService(gdb)
	widget := seedProduct(t, gdb, "Widget", 100, 25, 10)

	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june15 := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	july1 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	// gross 100, cost 40 → net 60
	createInvoiceOn(t, ledger, "INV-1", june1, 100, models.InvoiceStatusPaid,
		[]models.InvoiceItem{productItem(widget.ID, 4, 25)})
	// ad-hoc: gross 100, no cost, 10% discount → net 90
	createInvoiceOn(t, ledger, "INV-2", june15, 90, models.InvoiceStatusPaid,
		[]models.InvoiceItem{{Description: "Install", Quantity: 2, UnitPrice: 50, Discount: 10, LineTotal: 90}})
	// gross 50, cost 20, 50% discount (25) → net 5
	createInvoiceOn(t, ledger, "INV-3", july1, 25, models.InvoiceStatusUnpaid,
		[]models.InvoiceItem{{ProductID: &widget.ID, Quantity: 2, UnitPrice: 25, Discount: 50, LineTotal: 25}})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	monthly, err := reports.Income(BucketMonthly, from, to)
	require.NoError(t, err)
	require.Len(t, monthly, 2, "empty months are absent, not zero")
	assert.Equal(t, "2024-06", monthly[0].Period)
	assert.InDelta(t, 200.0, monthly[0].Gross, 1e-9)
	assert.InDelta(t, 150.0, monthly[0].Net, 1e-9)
	assert.Equal(t, "2024-07", monthly[1].Period)
	assert.InDelta(t, 50.0, monthly[1].Gross, 1e-9)
	assert.InDelta(t, 5.0, monthly[1].Net, 1e-9)

	yearly, err := reports.Income(BucketYearly, from, to)
	require.NoError(t, err)
	require.Len(t, yearly, 1)
	assert.Equal(t, "2024", yearly[0].Period)
	assert.InDelta(t, 250.0, yearly[0].Gross, 1e-9)
	assert.InDelta(t, 155.0, yearly[0].Net, 1e-9)

	daily, err := reports.Income(BucketDaily, from, to)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2024-06-01", daily[0].Period)

	// Range filtering is inclusive on both ends.
	julyOnly, err := reports.Income(BucketMonthly, july1, july1)
	require.NoError(t, err)
	require.Len(t, julyOnly, 1)
	assert.Equal(t, "2024-07", julyOnly[0].Period)
}

func TestIncomeUnknownBucket(t *testing.T) {
	gdb := setupTestDB(t)
	_, err := NewReportService(gdb).Income("weekly", time.Now(), time.Now())
	require.Error(t, err)
}

func TestProductSalesOrderedByRevenue(t *testing.T) {
	gdb := setupTestDB(t)
	ledger := NewLedgerService(gdb)
	reports := NewReportService(gdb)
	widget := seedProduct(t, gdb, "Widget", 100, 25, 10)
	gadget := seedProduct(t, gdb, "Gadget", 100, 40, 15)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	createInvoiceOn(t, ledger, "INV-1", date, 300, models.InvoiceStatusPaid, []models.InvoiceItem{
		productItem(widget.ID, 2, 25), // revenue 50
		productItem(gadget.ID, 5, 40), // revenue 200
	})
	createInvoiceOn(t, ledger, "INV-2", date, 75, models.InvoiceStatusPaid, []models.InvoiceItem{
		productItem(widget.ID, 3, 25), // revenue 75
		{Description: "Ad-hoc", Quantity: 1, UnitPrice: 999, LineTotal: 999},
	})

	sales, err := reports.ProductSales()
	require.NoError(t, err)
	require.Len(t, sales, 2, "ad-hoc lines excluded")
	assert.Equal(t, "Gadget", sales[0].Name)
	assert.InDelta(t, 200.0, sales[0].Revenue, 1e-9)
	assert.InDelta(t, 5.0, sales[0].Quantity, 1e-9)
	assert.Equal(t, "Widget", sales[1].Name)
	assert.InDelta(t, 125.0, sales[1].Revenue, 1e-9)
	assert.InDelta(t, 5.0, sales[1].Quantity, 1e-9)
}
