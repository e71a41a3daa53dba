package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"homingai-bridge/internal/domain"
)

type FlowResultType string

const (
	FlowCreateEntry FlowResultType = "create_entry"
	FlowForm        FlowResultType = "form"
	FlowAbort       FlowResultType = "abort"
)

const (
	FlowErrorRequired      = "required"
	FlowErrorCannotConnect = "cannot_connect"
	FlowErrorInvalidAuth   = "invalid_auth"
	FlowErrorUnknown       = "unknown"

	AbortAlreadyConfigured = "already_configured"
)

// FlowResult is what a credential step hands back to the operator: a new
// entry, the form again with field errors, or an abort reason.
type FlowResult struct {
	Type   FlowResultType
	Entry  *domain.Entry
	Errors map[string]string
	Reason string
}

// Flow collects a single credential field and turns it into an entry.
type Flow struct {
	domain    string
	title     string
	field     string
	validator CredentialValidator
	store     EntryStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewSTTFlow accepts any non-empty API key without contacting the service.
func NewSTTFlow(store EntryStore, logger *slog.Logger) *Flow {
	return &Flow{
		domain: domain.DomainSTT,
		title:  "HomingAI Speech To Text",
		field:  domain.FieldAPIKey,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// NewConversationFlow validates the access token remotely before storing it.
func NewConversationFlow(store EntryStore, validator CredentialValidator, logger *slog.Logger) *Flow {
	return &Flow{
		domain:    domain.DomainConversation,
		title:     "HomingAI Conversation",
		field:     domain.FieldAccessToken,
		validator: validator,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

func (f *Flow) Domain() string { return f.domain }
func (f *Flow) Field() string  { return f.field }

// Submit runs the step once. The returned error is reserved for store
// failures; operator-facing problems come back as a form or abort result.
func (f *Flow) Submit(ctx context.Context, input map[string]string) (FlowResult, error) {
	credential := input[f.field]
	if strings.TrimSpace(credential) == "" {
		return formResult(f.field, FlowErrorRequired), nil
	}

	if f.validator != nil {
		if err := f.validator.Validate(ctx, credential); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidAuth):
				f.logger.Warn("credential rejected", "domain", f.domain, "error", err)
				return formResult("base", FlowErrorInvalidAuth), nil
			case errors.Is(err, domain.ErrCannotConnect):
				f.logger.Warn("validation endpoint unreachable", "domain", f.domain, "error", err)
				return formResult("base", FlowErrorCannotConnect), nil
			default:
				f.logger.Error("unexpected validation failure", "domain", f.domain, "error", err)
				return formResult("base", FlowErrorUnknown), nil
			}
		}
	}

	if _, exists, err := f.store.FindByUniqueID(ctx, f.domain, credential); err != nil {
		return FlowResult{}, fmt.Errorf("looking up existing entry: %w", err)
	} else if exists {
		return FlowResult{Type: FlowAbort, Reason: AbortAlreadyConfigured}, nil
	}

	entry := domain.Entry{
		ID:        uuid.NewString(),
		Domain:    f.domain,
		Title:     f.title,
		UniqueID:  credential,
		Data:      map[string]string{f.field: credential},
		CreatedAt: f.now().UTC(),
	}
	if err := f.store.Add(ctx, entry); err != nil {
		return FlowResult{}, fmt.Errorf("storing entry: %w", err)
	}

	f.logger.Info("entry created", "domain", f.domain, "entry_id", entry.ID)
	return FlowResult{Type: FlowCreateEntry, Entry: &entry}, nil
}

func formResult(field, code string) FlowResult {
	return FlowResult{Type: FlowForm, Errors: map[string]string{field: code}}
}
