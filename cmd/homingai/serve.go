package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"homingai-bridge/config"
	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
	"homingai-bridge/internal/infra/audio"
	"homingai-bridge/internal/infra/homingai"
	"homingai-bridge/internal/infra/pushover"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assist pipeline on the configured audio source",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			agent, err := a.hub.Conversation(ctx)
			if err != nil {
				return err
			}

			stt, err := a.hub.SpeechToText(ctx)
			if errors.Is(err, domain.ErrNotConfigured) {
				a.logger.Warn("speech to text not configured, only text commands will work")
				stt = nil
			} else if err != nil {
				return err
			}

			assistant := application.NewAssistant(
				createAudioSource(a.cfg.Audio, a.logger),
				stt,
				agent,
				newResponder(a.cfg.Pushover, cmd.OutOrStdout()),
				homingai.SpeechLanguage,
				a.logger,
			)

			a.logger.Info("starting HomingAI assist pipeline", "audio_source", a.cfg.Audio.Source)

			if err := assistant.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("assistant: %w", err)
			}
			a.logger.Info("shutting down")
			return nil
		}),
	}
}

func newResponder(cfg config.PushoverConfig, out io.Writer) application.Responder {
	console := &consoleResponder{out: out}
	if !cfg.Enabled {
		return console
	}
	return application.Responders{console, pushover.NewNotifier(cfg.Endpoint, cfg.Token, cfg.UserKey)}
}

func createAudioSource(cfg config.AudioConfig, logger *slog.Logger) application.AudioSource {
	switch cfg.Source {
	case "http":
		return audio.NewHTTPSource(cfg.HTTPAddr, cfg.AuthToken, logger)
	case "file":
		return audio.NewFileSource(cfg.FileDir, logger)
	case "microphone":
		return audio.NewMicrophoneSource(cfg.SampleRate, logger)
	default:
		logger.Warn("unknown audio source, using http", "source", cfg.Source)
		return audio.NewHTTPSource(cfg.HTTPAddr, cfg.AuthToken, logger)
	}
}
