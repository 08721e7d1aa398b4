package cmd

import (
	"log"

	"distrohub/config"
	"distrohub/db"
	"distrohub/model"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the content tables",
	Long:  `Create or update the business content tables (pricing, services, store partners, distribution steps) in MySQL.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.AutoMigrateModels(
			&model.PricingCategory{},
			&model.PricingPlan{},
			&model.Service{},
			&model.AdditionalService{},
			&model.StorePartner{},
			&model.DistributionStep{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
