package main

import (
	"github.com/spf13/cobra"

	"github.com/gabrielamnss1/Estoque-Certo/internal/infrastructure/postgres"
	"github.com/gabrielamnss1/Estoque-Certo/pkg/config"
)

var migrationsSource string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrações do banco de dados",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return postgres.MigrateUp(cfg.DB, migrationsSource)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Desfaz a última migração aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return postgres.MigrateDown(cfg.DB, migrationsSource)
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsSource, "source", "file://migrations", "origem das migrações")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
