package cmd

import (
	"fmt"
	"log"
	"time"

	employeemodel "github.com/frahmantamala/hrm-records/internal/core/datamodel/employee"
	"github.com/spf13/cobra"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample employee records for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}

		if clearData {
			if err := a.DB.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			fmt.Println("Cleared existing employee data")
		}

		now := time.Now().Format("2006-01-02 15:04:05")
		samples := []employeemodel.Employee{
			{
				EPFNumber:        "EPF001",
				NameWithInitials: "A.B. Perera",
				FullName:         "Anura Bandara Perera",
				Department:       strPtr("Operations"),
				Designation:      strPtr("Supervisor"),
				Cader:            strPtr("Permanent"),
				Allocation:       strPtr("Head Office"),
				TransportRoute:   strPtr("Route 1"),
				WorkingStatus:    employeemodel.WorkingStatusActive,
				CreatedAt:        now,
			},
			{
				EPFNumber:        "EPF002",
				NameWithInitials: "K.M. Silva",
				FullName:         "Kumari Manel Silva",
				Department:       strPtr("Finance"),
				Designation:      strPtr("Accountant"),
				Cader:            strPtr("Permanent"),
				Allocation:       strPtr("Head Office"),
				TransportRoute:   strPtr("Route 2"),
				WorkingStatus:    employeemodel.WorkingStatusActive,
				CreatedAt:        now,
			},
			{
				EPFNumber:        "EPF003",
				NameWithInitials: "S. Fernando",
				FullName:         "Sunil Fernando",
				Department:       strPtr("Operations"),
				Designation:      strPtr("Operator"),
				Cader:            strPtr("Contract"),
				Allocation:       strPtr("Plant A"),
				TransportRoute:   strPtr("Route 1"),
				WorkingStatus:    employeemodel.WorkingStatusResigned,
				CreatedAt:        now,
			},
		}

		for _, e := range samples {
			var exists int
			row := a.DB.Raw("SELECT 1 FROM employees WHERE epf_number = ?", e.EPFNumber).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("employee %s already exists, skipping\n", e.EPFNumber)
				continue
			}
			if err := a.DB.Create(&e).Error; err != nil {
				log.Fatalf("failed to seed employee %s: %v", e.EPFNumber, err)
			}
			fmt.Printf("Seeded employee: %s (%s)\n", e.NameWithInitials, e.EPFNumber)
		}

		fmt.Println("Seeding complete")
	},
}

func strPtr(s string) *string { return &s }
