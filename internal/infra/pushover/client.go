package pushover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homingai-bridge/internal/domain"
)

const DefaultEndpoint = "https://api.pushover.net/1/messages.json"

// Notifier pushes assist failures to a phone. Successful results are not
// sent.
type Notifier struct {
	endpoint   string
	token      string
	userKey    string
	httpClient *http.Client
}

func NewNotifier(endpoint, token, userKey string) *Notifier {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Notifier{
		endpoint:   endpoint,
		token:      token,
		userKey:    userKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) Respond(ctx context.Context, input string, result domain.Result) error {
	if result.OK || n.token == "" || n.userKey == "" {
		return nil
	}

	message := result.Message
	if input != "" {
		message = fmt.Sprintf("%s\n%s", input, result.Message)
	}
	return n.send(ctx, "HomingAI "+string(result.Cause), message)
}

func (n *Notifier) send(ctx context.Context, title, message string) error {
	data := url.Values{}
	data.Set("token", n.token)
	data.Set("user", n.userKey)
	data.Set("title", title)
	data.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushover error: %s", resp.Status)
	}
	return nil
}
