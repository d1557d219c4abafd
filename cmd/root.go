package main

import (
	"github.com/spf13/cobra"

	"rolsa/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rolsa",
	Short: "Rolsa Technologies website",
	Long: `Rolsa serves the company website: product pages, the energy and carbon
calculators, user accounts and installation bookings, backed by SQLite.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
