package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"homingai-bridge/config"
	"homingai-bridge/internal/application"
	"homingai-bridge/internal/infra/bolt"
	"homingai-bridge/internal/infra/homingai"
	"homingai-bridge/internal/security"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "homingai",
		Short:        "Bridge local voice commands to the HomingAI cloud",
		SilenceUsage: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")

	cmd.AddCommand(
		newSetupCmd(opts),
		newEntriesCmd(opts),
		newTranscribeCmd(opts),
		newConverseCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

// app holds what every subcommand needs once config is loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	hub    *application.Hub
	close  func() error
}

func openApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Log, cmd.ErrOrStderr())

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	session := homingai.NewSession(cfg.HomingAI.Timeout.Std())
	client := homingai.NewClientWithURL(cfg.HomingAI.BaseURL, session)
	hub := application.NewHub(store, homingai.NewFactory(client, logger), logger)

	return &app{cfg: cfg, logger: logger, hub: hub, close: closeStore}, nil
}

func openStore(cfg config.StoreConfig) (application.EntryStore, func() error, error) {
	if cfg.Driver == "memory" {
		return application.NewMemoryStore(), func() error { return nil }, nil
	}
	store, err := bolt.Open(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening entry store: %w", err)
	}
	return store, store.Close, nil
}

// withApp opens the app for the duration of fn.
func withApp(opts *rootOptions, fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, opts)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.close(); err != nil {
				a.logger.Warn("closing entry store", "error", err)
			}
		}()
		return fn(cmd.Context(), cmd, a, args)
	}
}

func setupLogger(cfg config.LogConfig, out io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(security.NewRedactedHandler(handler))
}
