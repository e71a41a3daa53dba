package application

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"homingai-bridge/internal/domain"
)

// Assistant chains speech-to-text into the conversation agent for every
// command an audio source yields.
type Assistant struct {
	audio     AudioSource
	stt       SpeechToText
	agent     ConversationAgent
	responder Responder
	language  string
	logger    *slog.Logger
}

func NewAssistant(
	audio AudioSource,
	stt SpeechToText,
	agent ConversationAgent,
	responder Responder,
	language string,
	logger *slog.Logger,
) *Assistant {
	return &Assistant{
		audio:     audio,
		stt:       stt,
		agent:     agent,
		responder: responder,
		language:  language,
		logger:    logger,
	}
}

func (a *Assistant) Run(ctx context.Context) error {
	a.logger.Info("starting audio source", "source", a.audio.Name())
	if err := a.audio.Start(ctx); err != nil {
		return fmt.Errorf("starting audio: %w", err)
	}
	defer a.audio.Stop()

	a.logger.Info("assistant ready, listening for commands")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := a.processOneCommand(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.logger.Error("processing command", "error", err)
			}
		}
	}
}

func (a *Assistant) processOneCommand(ctx context.Context) error {
	payload, err := a.audio.NextCommand(ctx)
	if err != nil {
		return fmt.Errorf("getting audio: %w", err)
	}

	if len(payload) == 0 {
		return nil
	}

	text, isText := IsTextCommand(payload)
	if isText {
		a.logger.Info("received text command directly", "text", text)
	} else {
		a.logger.Info("received audio", "bytes", len(payload))

		if a.stt == nil {
			return fmt.Errorf("transcribing: %w", domain.ErrNotConfigured)
		}

		meta := DefaultSpeechMetadata(a.language)
		if !a.stt.Capabilities().Supports(meta) {
			return fmt.Errorf("speech backend does not accept %+v", meta)
		}

		transcript := a.stt.Transcribe(ctx, meta, bytes.NewReader(payload))
		if !transcript.OK {
			a.logger.Warn("transcription failed", "cause", transcript.Cause, "message", transcript.Message)
			return a.respond(ctx, "", transcript)
		}

		text = transcript.Text
		a.logger.Info("transcribed", "text", text)
	}

	if text == "" {
		a.logger.Warn("empty transcript, skipping")
		return nil
	}

	reply := a.agent.Converse(ctx, domain.ChatTurn{
		Text:     text,
		Language: a.language,
	})

	a.logger.Info("conversation finished", "ok", reply.OK, "cause", reply.Cause)

	return a.respond(ctx, text, reply)
}

func (a *Assistant) respond(ctx context.Context, input string, result domain.Result) error {
	if err := a.responder.Respond(ctx, input, result); err != nil {
		return fmt.Errorf("responding: %w", err)
	}
	return nil
}

// IsTextCommand reports whether payload carries text rather than audio.
func IsTextCommand(data []byte) (string, bool) {
	prefix := domain.TextCommandPrefix
	if len(data) > len(prefix) && string(data[:len(prefix)]) == prefix {
		return string(data[len(prefix):]), true
	}
	return "", false
}
