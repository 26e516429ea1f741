// Package main provides the resume_pdf CLI: render resume content to a one-page PDF,
// validate content files, and serve the rendering HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resume_pdf",
	Short:        "One-page resume PDF renderer",
	Long:         "resume_pdf lays out structured resume content (header, summary, skills, experience, education) on a single page and writes it as a PDF.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
