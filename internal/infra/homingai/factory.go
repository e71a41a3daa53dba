package homingai

import (
	"log/slog"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
)

// Factory binds entries to adapters that share one Client.
type Factory struct {
	client *Client
	logger *slog.Logger
}

func NewFactory(client *Client, logger *slog.Logger) *Factory {
	return &Factory{client: client, logger: logger}
}

func (f *Factory) SpeechToText(entry domain.Entry) application.SpeechToText {
	return NewSpeechToText(f.client, entry.Data[domain.FieldAPIKey], f.logger.With("entry_id", entry.ID))
}

func (f *Factory) Conversation(entry domain.Entry) application.ConversationAgent {
	return NewAgent(f.client, entry.Data[domain.FieldAccessToken], f.logger.With("entry_id", entry.ID))
}

func (f *Factory) Validator() application.CredentialValidator {
	return NewValidator(f.client, f.logger)
}
