package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nouralabs/accounting/internal/services"
)

var (
	incomeBucket string
	incomeFrom   string
	incomeTo     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Read-only reporting views",
}

var reportTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Customer/invoice counts, revenue, and totals by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		t, err := services.NewReportService(gdb).Totals()
		if err != nil {
			return err
		}
		fmt.Printf("Customers: %d\nInvoices:  %d\nRevenue:   %.2f\n", t.Customers, t.Invoices, t.Revenue)
		for status, amount := range t.StatusBreakdown {
			fmt.Printf("  %-10s %.2f\n", status, amount)
		}
		return nil
	},
}

var reportIncomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Gross and net income per day, month, or year",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := time.Parse("2006-01-02", incomeFrom)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		to, err := time.Parse("2006-01-02", incomeTo)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		points, err := services.NewReportService(gdb).Income(services.IncomeBucket(incomeBucket), from, to)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("%-10s gross %.2f  net %.2f\n", p.Period, p.Gross, p.Net)
		}
		return nil
	},
}

var reportProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Quantity sold and revenue per product, best sellers first",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		sales, err := services.NewReportService(gdb).ProductSales()
		if err != nil {
			return err
		}
		for _, s := range sales {
			fmt.Printf("%-30s qty %.2f  revenue %.2f\n", s.Name, s.Quantity, s.Revenue)
		}
		return nil
	},
}

func init() {
	reportIncomeCmd.Flags().StringVar(&incomeBucket, "bucket", "monthly", "daily, monthly, or yearly")
	reportIncomeCmd.Flags().StringVar(&incomeFrom, "from", time.Now().AddDate(-1, 0, 0).Format("2006-01-02"), "start date (inclusive)")
	reportIncomeCmd.Flags().StringVar(&incomeTo, "to", time.Now().Format("2006-01-02"), "end date (inclusive)")

	reportCmd.AddCommand(reportTotalsCmd)
	reportCmd.AddCommand(reportIncomeCmd)
	reportCmd.AddCommand(reportProductsCmd)
}
