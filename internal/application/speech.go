package application

import (
	"context"
	"io"

	"homingai-bridge/internal/domain"
)

// SpeechToText turns a finite audio stream into text. Implementations never
// return errors; every failure is folded into the result.
type SpeechToText interface {
	Transcribe(ctx context.Context, meta domain.SpeechMetadata, audio io.Reader) domain.Result
	Capabilities() domain.SpeechCapabilities
}

// ConversationAgent answers a single chat turn.
type ConversationAgent interface {
	Converse(ctx context.Context, turn domain.ChatTurn) domain.Result
	SupportedLanguages() []string
}

// CredentialValidator checks a credential against the remote service.
type CredentialValidator interface {
	Validate(ctx context.Context, credential string) error
}
