package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <destination>",
	Short: "Export the database file to a destination path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}
		if err := a.login(); err != nil {
			log.Fatal(err)
		}

		msg, err := a.API.ExportDatabase(args[0])
		if err != nil {
			log.Fatal(internal.Message(err))
		}
		fmt.Println(msg)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Replace the database with a previously exported file",
	Long: `Replace the live database with a previously exported file. The source is
validated first and the current database is backed up next to it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := initApp()
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}
		if err := a.login(); err != nil {
			log.Fatal(err)
		}

		msg, err := a.API.ImportDatabase(args[0])
		if err != nil {
			log.Fatal(internal.Message(err))
		}
		fmt.Println(msg)
	},
}
