package homingai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"homingai-bridge/internal/domain"
)

const codeOK = 200

// Agent forwards chat turns to the HomingAI chat endpoint. It keeps no
// conversation state of its own.
type Agent struct {
	client      *Client
	accessToken string
	logger      *slog.Logger
}

func NewAgent(client *Client, accessToken string, logger *slog.Logger) *Agent {
	return &Agent{
		client:      client,
		accessToken: accessToken,
		logger:      logger,
	}
}

type chatRequest struct {
	Content        string         `json:"content"`
	Language       string         `json:"language"`
	ConversationID *string        `json:"conversation_id"`
	Context        map[string]any `json:"context"`
}

type chatResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (a *Agent) SupportedLanguages() []string {
	return []string{SpeechLanguage}
}

func (a *Agent) Converse(ctx context.Context, turn domain.ChatTurn) (result domain.Result) {
	messages := MessagesFor(turn.Language)
	defer recoverFailure(a.logger, "conversation", &result, messages)

	turnContext := turn.Context
	if turnContext == nil {
		turnContext = map[string]any{}
	}

	payload, err := json.Marshal(chatRequest{
		Content:        turn.Text,
		Language:       turn.Language,
		ConversationID: turn.ConversationID,
		Context:        turnContext,
	})
	if err != nil {
		a.logger.Error("unexpected error encoding conversation request", "error", fmt.Errorf("marshaling request: %w", err))
		return failure(err, messages)
	}

	resp, err := a.client.post(ctx, pathChat, a.accessToken, "application/json", payload)
	if err != nil {
		a.logger.Error("error connecting to HomingAI API", "error", err)
		return failure(err, messages)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("error calling HomingAI API", "status", resp.StatusCode)
		return domain.Failure(messages.ServerUnavailable, domain.CauseRemote)
	}

	var body chatResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		a.logger.Error("unexpected error decoding conversation response", "error", err, "body", string(resp.Body))
		return failure(err, messages)
	}

	if body.Code != codeOK {
		a.logger.Error("HomingAI API returned error", "code", body.Code, "msg", body.Msg)
		return domain.Failure(messages.RemoteFailure(body.Msg), domain.CauseRemote)
	}

	return domain.Success(body.Msg)
}
