package application

import (
	"context"
	"fmt"
	"log/slog"

	"homingai-bridge/internal/domain"
)

// AdapterFactory builds adapters bound to the credential of an entry.
type AdapterFactory interface {
	SpeechToText(entry domain.Entry) SpeechToText
	Conversation(entry domain.Entry) ConversationAgent
	Validator() CredentialValidator
}

// Hub is the runtime context shared by the CLI and the pipeline. It owns
// the entry store and hands out flows and adapters.
type Hub struct {
	store   EntryStore
	factory AdapterFactory
	logger  *slog.Logger
}

func NewHub(store EntryStore, factory AdapterFactory, logger *slog.Logger) *Hub {
	return &Hub{store: store, factory: factory, logger: logger}
}

func (h *Hub) Store() EntryStore { return h.store }

func (h *Hub) STTFlow() *Flow {
	return NewSTTFlow(h.store, h.logger)
}

func (h *Hub) ConversationFlow() *Flow {
	return NewConversationFlow(h.store, h.factory.Validator(), h.logger)
}

// Flow returns the setup flow for a domain name.
func (h *Hub) Flow(domainName string) (*Flow, error) {
	switch domainName {
	case domain.DomainSTT:
		return h.STTFlow(), nil
	case domain.DomainConversation:
		return h.ConversationFlow(), nil
	default:
		return nil, fmt.Errorf("unknown integration domain: %s", domainName)
	}
}

// SpeechToText uses the oldest configured speech-to-text entry.
func (h *Hub) SpeechToText(ctx context.Context) (SpeechToText, error) {
	entry, err := h.firstEntry(ctx, domain.DomainSTT)
	if err != nil {
		return nil, err
	}
	return h.factory.SpeechToText(entry), nil
}

// Conversation uses the oldest configured conversation entry.
func (h *Hub) Conversation(ctx context.Context) (ConversationAgent, error) {
	entry, err := h.firstEntry(ctx, domain.DomainConversation)
	if err != nil {
		return nil, err
	}
	return h.factory.Conversation(entry), nil
}

func (h *Hub) firstEntry(ctx context.Context, domainName string) (domain.Entry, error) {
	entries, err := h.store.List(ctx, domainName)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("listing %s entries: %w", domainName, err)
	}
	if len(entries) == 0 {
		return domain.Entry{}, fmt.Errorf("%w: %s", domain.ErrNotConfigured, domainName)
	}
	return entries[0], nil
}
