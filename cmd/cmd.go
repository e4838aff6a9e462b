package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hrm-records",
	Short: "HRM Records",
	Long:  `Permission-aware employee record keeping over a local database file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("HRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file present; environment variables with defaults.
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			cfg := internal.LoadConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("error validating config from environment: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func setupLogger(cfg *internal.Config) {
	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing employee data before seeding")

	loginCommands := []*cobra.Command{exportCmd, importCmd, auditCmd}
	for _, c := range loginCommands {
		c.Flags().StringVar(&loginUsername, "username", "", "account username")
		c.Flags().StringVar(&loginPassword, "password", "", "account password")
	}

	auditCmd.Flags().StringVar(&auditAction, "action", "", "filter by action (CREATE, UPDATE, DELETE, LOGIN, ...)")
	auditCmd.Flags().StringVar(&auditEntity, "entity", "", "filter by entity type (EMPLOYEE, USER, DATABASE)")
	auditCmd.Flags().StringVar(&auditUser, "user", "", "filter by username substring")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 50, "page size")
	auditCmd.Flags().IntVar(&auditOffset, "offset", 0, "page offset")

	listCmd.Flags().StringVar(&listDepartment, "department", "", "filter by department")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by working status (active, resign)")
	listCmd.Flags().StringVar(&listEPF, "epf", "", "filter by EPF number substring")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
}
