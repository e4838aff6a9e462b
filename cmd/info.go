package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show database file size and record counts",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}

		info, err := a.API.DatabaseInfo()
		if err != nil {
			log.Fatalf("failed to read database info: %v", err)
		}

		fmt.Printf("Database:  %s\n", info.Path)
		fmt.Printf("Size:      %s\n", info.SizeFormatted)
		fmt.Printf("Employees: %d\n", info.EmployeeCount)
		fmt.Printf("Users:     %d\n", info.UserCount)
	},
}
