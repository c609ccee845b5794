// Command noura is the operational CLI for the accounting core: schema
// migration, seeding, reports, and a credential probe. The desktop UI links
// the service packages directly; this binary covers everything an installer
// or support engineer needs without the UI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nouralabs/accounting/internal/config"
	"github.com/nouralabs/accounting/internal/db"
	"github.com/nouralabs/accounting/internal/logger"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "noura",
	Short:         "Noura accounting core — database and reporting tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(authCheckCmd)
}

// bootDB loads .env + config, installs the logger, and opens the store.
func bootDB() (*gorm.DB, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Setup(cfg)
	return db.Open(cfg.Database)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		fmt.Println("Migrations completed.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ensure the settings row and default admin exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := bootDB()
		if err != nil {
			return err
		}
		if err := db.Seed(gdb); err != nil {
			return err
		}
		fmt.Println("Seeding completed.")
		return nil
	},
}
