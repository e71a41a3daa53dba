package application

import (
	"context"

	"homingai-bridge/internal/domain"
)

// Responder receives the outcome of each pipeline run.
type Responder interface {
	Respond(ctx context.Context, input string, result domain.Result) error
}

type NoopResponder struct{}

func (n *NoopResponder) Respond(_ context.Context, _ string, _ domain.Result) error {
	return nil
}

// Responders fans a result out to each responder in order, stopping at the
// first error.
type Responders []Responder

func (rs Responders) Respond(ctx context.Context, input string, result domain.Result) error {
	for _, r := range rs {
		if err := r.Respond(ctx, input, result); err != nil {
			return err
		}
	}
	return nil
}
