package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/server"
	"github.com/jonathan/ats-checker/internal/server/ratelimit"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload and ATS analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or PORT env)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flag beats env beats config file.
	port := cfg.Port
	if env := os.Getenv("PORT"); env != "" {
		p, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("invalid PORT environment variable %q: %w", env, err)
		}
		port = p
	}
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:           port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RateLimit: ratelimit.Config{
			Disabled:        cfg.RateLimitDisabled,
			PerMinute:       cfg.RateLimitPerMinute,
			Burst:           cfg.RateLimitBurst,
			CleanupInterval: 5 * time.Minute,
		},
	})

	return srv.Start()
}
