// Package cmd — serve command.
// Exposes the normalizer over HTTP.
package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/descpipe/core/describe"
	"github.com/gaurav-prasanna/descpipe/core/excerpt"
	"github.com/gaurav-prasanna/descpipe/internal/api"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (default from PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := cfg.Port
	if flagPort != "" {
		port = flagPort
	}

	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logs.GetLogger("api")
	handler := api.NewHandler(describe.New(), excerpt.New(cfg.ExcerptWords), logger)
	router := api.NewRouter(handler, api.RouterOptions{
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AllowedOrigins: cfg.CORSOrigins,
	})

	logger.Info("server starting", "port", port, "domain_default", cfg.Domain)
	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("serving on port %s: %w", port, err)
	}
	return nil
}
