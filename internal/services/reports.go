package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// ReportService derives read-only aggregates over invoices, items, and
// products. No mutation, no atomicity contract; just arithmetic.
type ReportService struct{ DB *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{DB: db} }

// Totals is the dashboard summary.
type Totals struct {
	Customers       int64
	Invoices        int64
	Revenue         float64
	StatusBreakdown map[string]float64
}

// IncomeBucket selects the time granularity of Income.
type IncomeBucket string

const (
	BucketDaily   IncomeBucket = "daily"
	BucketMonthly IncomeBucket = "monthly"
	BucketYearly  IncomeBucket = "yearly"
)

// IncomePoint is one period's aggregated income. Gross sums quantity times
// price; Net subtracts product cost and the per-line discounts.
type IncomePoint struct {
	Period string
	Gross  float64
	Net    float64
}

// ProductSale is one product's sales summary.
type ProductSale struct {
	Name     string
	Quantity float64
	Revenue  float64
}

// Totals counts customers and invoices, sums invoice totals, and breaks the
// sum down by status. Missing statuses land in the "Unknown" bucket.
func (s *ReportService) Totals() (Totals, error) {
	out := Totals{StatusBreakdown: map[string]float64{}}
	if err := s.DB.Table("customers").Count(&out.Customers).Error; err != nil {
		return Totals{}, err
	}

	var rev struct {
		Count int64
		Sum   float64
	}
	if err := s.DB.Table("invoices").
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS sum").
		Scan(&rev).Error; err != nil {
		return Totals{}, err
	}
	out.Invoices = rev.Count
	out.Revenue = rev.Sum

	var rows []struct {
		Status string
		Amount float64
	}
	if err := s.DB.Table("invoices").
		Select("status, COALESCE(SUM(total_amount), 0) AS amount").
		Group("status").Scan(&rows).Error; err != nil {
		return Totals{}, err
	}
	for _, r := range rows {
		status := r.Status
		if status == "" {
			status = "Unknown"
		}
		out.StatusBreakdown[status] += r.Amount
	}
	return out, nil
}

// Income aggregates line items into time buckets between from and to
// (inclusive). Bucketing happens in Go so the same query runs on every
// configured driver. Periods with no invoices are absent, not zero.
func (s *ReportService) Income(bucket IncomeBucket, from, to time.Time) ([]IncomePoint, error) {
	layout, err := bucketLayout(bucket)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		InvoiceDate time.Time
		Quantity    float64
		UnitPrice   float64
		Discount    float64
		CostPrice   float64
	}
	err = s.DB.Table("invoice_items AS ii").
		Select("i.invoice_date, ii.quantity, ii.unit_price, ii.discount, COALESCE(p.cost_price, 0) AS cost_price").
		Joins("JOIN invoices i ON i.id = ii.invoice_id").
		Joins("LEFT JOIN products p ON p.id = ii.product_id").
		Where("i.invoice_date >= ? AND i.invoice_date <= ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byPeriod := map[string]*IncomePoint{}
	for _, r := range rows {
		key := r.InvoiceDate.Format(layout)
		pt, ok := byPeriod[key]
		if !ok {
			pt = &IncomePoint{Period: key}
			byPeriod[key] = pt
		}
		gross := r.Quantity * r.UnitPrice
		pt.Gross += gross
		pt.Net += gross - r.Quantity*r.CostPrice - gross*r.Discount/100
	}

	out := make([]IncomePoint, 0, len(byPeriod))
	for _, pt := range byPeriod {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

// ProductSales sums quantity sold and revenue per product name, best sellers
// first. Ad-hoc lines carry no product and are excluded.
func (s *ReportService) ProductSales() ([]ProductSale, error) {
	var out []ProductSale
	err := s.DB.Table("invoice_items AS ii").
		Select("p.name, SUM(ii.quantity) AS quantity, SUM(ii.line_total) AS revenue").
		Joins("JOIN products p ON p.id = ii.product_id").
		Group("p.name").
		Order("revenue DESC").
		Scan(&out).Error
	return out, err
}

func bucketLayout(b IncomeBucket) (string, error) {
	switch b {
	case BucketDaily:
		return "2006-01-02", nil
	case BucketMonthly:
		return "2006-01", nil
	case BucketYearly:
		return "2006", nil
	default:
		return "", fmt.Errorf("unknown income bucket %q", b)
	}
}
