package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume persistence and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := config.Config{
		ListenAddr:  serveAddr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	cfg := flags.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
		ChromePath:  cfg.ChromePath,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
