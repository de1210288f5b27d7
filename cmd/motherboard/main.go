package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/refurbworks/motherboard/internal/config"
	"github.com/refurbworks/motherboard/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "motherboard",
	Short: "IT-asset intake and drive tracking tool",
	Long: `motherboard tracks refurbishment assets from intake to disposition.
It ingests hardware scan bundles (lshw reports), reconciles the storage
drives they describe against the asset database, and keeps an append-only
audit trail of every state-changing action.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/motherboard/config.yaml)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(intakeCmd)
	rootCmd.AddCommand(driveStatusCmd)
	rootCmd.AddCommand(findDriveCmd)
	rootCmd.AddCommand(touchesCmd)
	rootCmd.AddCommand(assetsCmd)
}

// loadConfig reads the config file or exits with an error
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the asset database or exits with an error
func openStore(cfg *config.Config) *store.Store {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return st
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// actor returns who to attribute state changes to
func actor(cmd *cobra.Command) string {
	if by, _ := cmd.Flags().GetString("by"); by != "" {
		return by
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "unknown"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
