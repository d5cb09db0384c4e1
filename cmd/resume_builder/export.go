package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/assembly"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/remote"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var (
	exportServiceURL string
	exportToken      string
	exportOutput     string
	exportVerbose    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <resume-id>",
	Short: "Export a resume as a PDF",
	Long:  `Fetch a stored resume from the service and render it to a one-page A4 PDF.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportServiceURL, "service-url", "", "Base URL of the resume service")
	exportCmd.Flags().StringVar(&exportToken, "token", "", "Bearer token for the resume service")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output PDF path (default <resume-id>.pdf)")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print a summary of the assembled resume")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid resume id %q: %w", args[0], err)
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := config.Config{
		ServiceURL: exportServiceURL,
		Token:      exportToken,
		Output:     exportOutput,
	}
	cfg := flags.MergeWithDefaults(fileCfg)
	if cfg.ServiceURL == "" {
		return fmt.Errorf("service URL is required (--service-url or config file)")
	}
	if cfg.Output == "" {
		cfg.Output = id.String() + ".pdf"
	}

	client := remote.NewClient(remote.Options{
		BaseURL: cfg.ServiceURL,
		Token:   cfg.Token,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	doc, err := client.GetResume(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch resume: %w", err)
	}

	view, err := assembly.Export(doc)
	if err != nil {
		return err
	}
	if exportVerbose || fileCfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResume(view)
	}
	html, err := assembly.RenderHTML(view)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	renderer := rendering.NewPDFRenderer(cfg.ChromePath)
	pdf, err := renderer.RenderPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.WriteFile(cfg.Output, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	log.Printf("[export] wrote %s (%d bytes)", cfg.Output, len(pdf))
	return nil
}
