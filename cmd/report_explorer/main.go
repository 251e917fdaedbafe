// Package main provides the entry point for the report explorer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "report_explorer",
	Short: "Equity Research Report Explorer API Server",
	Long:  "Report Explorer serves a browsable catalog of analysed equity research reports with filtering, on-demand HTML rendering, and optional login-gated access via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
