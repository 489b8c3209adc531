package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/config"
	"github.com/jonathan/fitness-roadmap/internal/logging"
	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes roadmap, weekly structure and personalization endpoints backed by the member database. Member routes require a bearer token signed with JWT_SECRET.`,
	RunE:  runServe,
}

var (
	servePort   int
	serveOrigin string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: PORT or 8080)")
	serveCmd.Flags().StringVar(&serveOrigin, "cors-origin", "*", "Access-Control-Allow-Origin value")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	svc := roadmap.NewService(database, database, logger, roadmapOptions(cfg))
	srv := server.New(server.Config{Port: cfg.Port, AllowedOrigin: serveOrigin}, svc, server.NewJWTService(jwtConfig), logger)

	return srv.Start(ctx)
}
