package main

import (
	"fmt"
	"os"

	"github.com/jonathan/report-explorer/internal/config"
	"github.com/jonathan/report-explorer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveConfig    string
	serveStaticDir string
	serveAuth      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for browsing, filtering, and rendering analysed research reports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "", "Directory holding rendered report artifacts")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require registration/login for report routes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		MongoURI:    os.Getenv("MONGO_URI"),
		Database:    os.Getenv("MONGO_DATABASE"),
		StaticDir:   serveStaticDir,
		Port:        servePort,
		AuthEnabled: serveAuth,
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		if !cmd.Flags().Changed("auth") {
			cfg.AuthEnabled = fileCfg.AuthEnabled
		}
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable (or 'mongo_uri' in the config file) is required")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		MongoURI:    cfg.MongoURI,
		Database:    cfg.Database,
		StaticDir:   cfg.StaticDir,
		AuthEnabled: cfg.AuthEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
