// Package main provides the entry point for the Resume Builder HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder HTTP API Server",
	Long:  "Resume Builder edits, paginates and exports resumes: a document and settings model, live preview with page-break overlays, and PDF export through a rendering service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
