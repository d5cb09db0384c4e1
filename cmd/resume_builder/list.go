package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/remote"
)

var (
	listServiceURL string
	listToken      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resumes",
	Long:  `List the resumes stored for the authenticated user, newest first.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listServiceURL, "service-url", "", "Base URL of the resume service")
	listCmd.Flags().StringVar(&listToken, "token", "", "Bearer token for the resume service")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := config.Config{ServiceURL: listServiceURL, Token: listToken}
	cfg := flags.MergeWithDefaults(fileCfg)
	if cfg.ServiceURL == "" {
		return fmt.Errorf("service URL is required (--service-url or config file)")
	}

	client := remote.NewClient(remote.Options{BaseURL: cfg.ServiceURL, Token: cfg.Token})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summaries, err := client.ListResumes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSummaries(summaries)
	return nil
}
