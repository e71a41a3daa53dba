package homingai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"homingai-bridge/internal/domain"
)

const DefaultBaseURL = "https://api.homingai.com"

const (
	pathValidate = "/ha/home/validate"
	pathASR      = "/ha/home/asr"
	pathChat     = "/ha/home/chat"
)

// NewSession returns the HTTP client shared by every adapter. Its timeout
// is the only deadline applied to remote calls.
func NewSession(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Client is the transport boundary to the HomingAI API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return NewClientWithURL(DefaultBaseURL, httpClient)
}

func NewClientWithURL(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type reply struct {
	StatusCode int
	Body       []byte
}

// post sends one authenticated request. Every returned error is a
// transport failure and wraps domain.ErrCannotConnect.
func (c *Client) post(ctx context.Context, path, token, contentType string, body []byte) (*reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", domain.ErrCannotConnect, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request: %v", domain.ErrCannotConnect, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrCannotConnect, err)
	}

	return &reply{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// failure converts an error from the call path into a result. Transport
// failures become connection errors; anything else is unexpected.
func failure(err error, messages Messages) domain.Result {
	if errors.Is(err, domain.ErrCannotConnect) {
		return domain.Failure(messages.CannotConnect, domain.CauseConnection)
	}
	return domain.Failure(messages.Unexpected, domain.CauseUnexpected)
}

// recoverFailure turns a panic in an adapter call into an unexpected
// failure so nothing escapes the adapter boundary.
func recoverFailure(logger *slog.Logger, op string, result *domain.Result, messages Messages) {
	if r := recover(); r != nil {
		logger.Error("unexpected panic in "+op, "panic", r, "stack", string(debug.Stack()))
		*result = domain.Failure(messages.Unexpected, domain.CauseUnexpected)
	}
}
