package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/audit"
	"github.com/spf13/cobra"
)

var (
	auditAction string
	auditEntity string
	auditUser   string
	auditLimit  int
	auditOffset int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit trail, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}
		if err := a.login(); err != nil {
			log.Fatal(err)
		}

		result, err := a.API.QueryAuditLogs(audit.Filters{
			Username:   auditUser,
			Action:     auditAction,
			EntityType: auditEntity,
			Limit:      auditLimit,
			Offset:     auditOffset,
		})
		if err != nil {
			log.Fatal(internal.Message(err))
		}

		for _, entry := range result.Logs {
			details := ""
			if entry.Details != nil {
				details = *entry.Details
			}
			fmt.Printf("%-19s  %-12s  %-7s  %-8s  %s\n",
				entry.CreatedAt, entry.Username, entry.Action, entry.EntityType, details)
		}
		fmt.Printf("\n%d of %d entries\n", len(result.Logs), result.TotalCount)
	},
}
