package cmd

import (
	"log"

	"github.com/frahmantamala/hrm-records/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	RunE:  runMigration,
	Use:   "migrate",
	Short: "apply the embedded sql migrations",
}

func runMigration(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	setupLogger(cfg)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("goose up: %v", err)
	}

	return nil
}
