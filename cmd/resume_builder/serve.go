package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/pagination"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, previewing and exporting resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	pdfServiceURL := os.Getenv("PDF_SERVICE_URL")
	if pdfServiceURL == "" {
		return fmt.Errorf("PDF_SERVICE_URL environment variable is required")
	}

	signalPath := os.Getenv("SAMPLE_SIGNAL_PATH")
	if signalPath == "" {
		signalPath = "sample-signal.json"
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	sessions := store.NewManager(server.NewPersister(database))
	exporter := export.NewExporter(export.NewClient(pdfServiceURL))
	measurer := pagination.NewBrowserMeasurer()
	signals := sample.NewSignalStore(signalPath)
	limiter := ratelimit.NewLimiter(ratelimit.LoadConfig())

	srv := server.NewServer(database, sessions, exporter, measurer, signals, limiter)
	return srv.Run(ctx, servePort)
}
