// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume builder service and export tool",
	Long:  "Resume builder persists resume documents section by section via a REST API and exports them as one-page PDFs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadConfig reads the optional config file named by --config.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
