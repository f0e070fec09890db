package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/server"
)

var (
	servePort       int
	serveVocabulary string
	serveRegion     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking uploaded resumes against a job description.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to skill vocabulary JSON file (defaults to the built-in list)")
	serveCmd.Flags().StringVar(&serveRegion, "region", "US", "Default phone region as ISO 3166-1 alpha-2")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Database persistence is optional; without it /runs endpoints are disabled
	databaseURL := os.Getenv("DATABASE_URL")

	cfg := server.Config{
		Port:           servePort,
		DatabaseURL:    databaseURL,
		VocabularyPath: serveVocabulary,
		Region:         serveRegion,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
