package homingai_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homingai-bridge/internal/domain"
	"homingai-bridge/internal/infra/homingai"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "accepted", status: http.StatusOK, body: `{"code":200}`},
		{name: "rejected by code", status: http.StatusOK, body: `{"code":401}`, wantErr: domain.ErrInvalidAuth},
		{name: "unparseable body", status: http.StatusOK, body: `oops`, wantErr: domain.ErrInvalidAuth},
		{name: "unauthorized status", status: http.StatusUnauthorized, body: ``, wantErr: domain.ErrInvalidAuth},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantErr: domain.ErrCannotConnect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/ha/home/validate" {
					http.Error(w, "not found", http.StatusNotFound)
					return
				}
				if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
					t.Errorf("Authorization: got %q", got)
				}
				if body, _ := io.ReadAll(r.Body); string(body) != "{}" {
					t.Errorf("body: got %q, want {}", body)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := homingai.NewClientWithURL(server.URL, homingai.NewSession(0))
			err := homingai.NewValidator(client, discardLogger()).Validate(context.Background(), "token-123")

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ConnectionFailure(t *testing.T) {
	client := homingai.NewClientWithURL(closedServerURL(), homingai.NewSession(0))
	err := homingai.NewValidator(client, discardLogger()).Validate(context.Background(), "token-123")

	if !errors.Is(err, domain.ErrCannotConnect) {
		t.Errorf("error: got %v, want ErrCannotConnect", err)
	}
}

func TestMessagesFor(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{lang: "zh-CN", want: "抱歉，无法连接到服务器。"},
		{lang: "en-US", want: "Sorry, the server could not be reached."},
		{lang: "fr", want: "抱歉，无法连接到服务器。"},
		{lang: "", want: "抱歉，无法连接到服务器。"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := homingai.MessagesFor(tt.lang).CannotConnect; got != tt.want {
				t.Errorf("CannotConnect: got %q, want %q", got, tt.want)
			}
		})
	}
}
