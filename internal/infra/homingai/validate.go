package homingai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"homingai-bridge/internal/domain"
)

// Validator checks an access token with one call to the validate endpoint.
type Validator struct {
	client *Client
	logger *slog.Logger
}

func NewValidator(client *Client, logger *slog.Logger) *Validator {
	return &Validator{client: client, logger: logger}
}

func (v *Validator) Validate(ctx context.Context, accessToken string) error {
	resp, err := v.client.post(ctx, pathValidate, accessToken, "application/json", []byte("{}"))
	if err != nil {
		v.logger.Error("connecting to HomingAI API failed", "error", err)
		return err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		v.logger.Error("validation rejected", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", domain.ErrInvalidAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		v.logger.Error("validation failed", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", domain.ErrCannotConnect, resp.StatusCode)
	}

	var body struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		v.logger.Error("validation response unreadable", "error", err)
		return fmt.Errorf("%w: decoding response: %v", domain.ErrInvalidAuth, err)
	}

	if body.Code != codeOK {
		v.logger.Error("validation failed", "code", body.Code)
		return fmt.Errorf("%w: code %d", domain.ErrInvalidAuth, body.Code)
	}

	return nil
}
