package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/logging"
	"github.com/jonathan/smarthire/internal/server"
	"github.com/jonathan/smarthire/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	datasetOptions
	addr     string
	logLevel string
}

func newServeCmd() *cobra.Command {
	o := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		Long: `Starts the HTTP API backing the hiring dashboard.

Requires JWT_SECRET. Password accounts come from the config file; Google
sign-in is enabled when GOOGLE_CLIENT_ID (or google_client_id) is set.`,
		RunE: o.run,
	}

	o.datasetOptions.bind(cmd)
	cmd.Flags().StringVar(&o.addr, "addr", "", "Listen address (default \":8080\")")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn or error (default \"info\")")
	return cmd
}

func (o *serveOptions) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = o.addr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cfg.GoogleClientID == "" {
		cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}

	pool, err := loadPool(cfg)
	if err != nil {
		return err
	}
	logger.Info("loaded candidates", "dataset", cfg.Dataset, "count", len(pool))

	srv, err := server.New(server.Config{
		Addr:           cfg.Addr,
		Pool:           pool,
		Strategy:       cfg.Strategy,
		Attempts:       cfg.Attempts,
		Seed:           cfg.Seed,
		AllowedOrigins: cfg.AllowedOrigins,
		Users:          cfg.Users,
		GoogleClientID: cfg.GoogleClientID,
		JWT:            jwtCfg,
		Passwords:      passwords,
		RateLimit:      ratelimit.LoadConfig(),
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
