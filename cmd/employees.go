package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/hrm-records/internal"
	employeesvc "github.com/frahmantamala/hrm-records/internal/employee"
	"github.com/spf13/cobra"
)

var (
	listDepartment string
	listStatus     string
	listEPF        string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employee records",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}

		records, err := a.API.ListEmployees(employeesvc.Filters{
			EPFNumber:     listEPF,
			Department:    listDepartment,
			WorkingStatus: listStatus,
		})
		if err != nil {
			log.Fatal(internal.Message(err))
		}

		for _, e := range records {
			dept := ""
			if e.Department != nil {
				dept = *e.Department
			}
			fmt.Printf("%-10s  %-25s  %-15s  %s\n", e.EPFNumber, e.NameWithInitials, dept, e.WorkingStatus)
		}
		fmt.Printf("\n%d employees\n", len(records))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard aggregates",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}

		stats, err := a.API.DashboardStats()
		if err != nil {
			log.Fatal(internal.Message(err))
		}

		fmt.Printf("Total employees:    %d\n", stats.TotalEmployees)
		fmt.Printf("Active:             %d\n", stats.ActiveEmployees)
		fmt.Printf("Resigned:           %d\n", stats.ResignedEmployees)
		fmt.Printf("Joined last 30d:    %d\n", stats.RecentJoinings)
		fmt.Printf("Resigned last 30d:  %d\n", stats.RecentResignations)

		if len(stats.Departments) > 0 {
			fmt.Println("\nBy department:")
			for _, g := range stats.Departments {
				fmt.Printf("  %-20s %d\n", g.Name, g.Count)
			}
		}
	},
}
