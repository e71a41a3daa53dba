package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/infra/homingai"
)

func newTranscribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe FILE",
		Short: "Transcribe a 16 kHz mono WAV file (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			stt, err := a.hub.SpeechToText(ctx)
			if err != nil {
				return err
			}

			var audio io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening audio: %w", err)
				}
				defer f.Close()
				audio = f
			}

			result := stt.Transcribe(ctx, application.DefaultSpeechMetadata(homingai.SpeechLanguage), audio)
			printResult(cmd.OutOrStdout(), result)
			if !result.OK {
				return fmt.Errorf("transcription failed: %s", result.Cause)
			}
			return nil
		}),
	}
}
