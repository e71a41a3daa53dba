package audio_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homingai-bridge/internal/domain"
	"homingai-bridge/internal/infra/audio"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPSource_ReceiveAudio(t *testing.T) {
	source := audio.NewHTTPSource("127.0.0.1:0", "", discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	testAudio := []byte("fake audio data for testing")
	source.InjectAudio(testAudio)

	received, err := source.NextCommand(ctx)
	if err != nil {
		t.Fatalf("receiving audio: %v", err)
	}
	if !bytes.Equal(received, testAudio) {
		t.Errorf("audio mismatch: got %d bytes, want %d bytes", len(received), len(testAudio))
	}
}

func TestHTTPSource_TextEndpointQueuesTextCommand(t *testing.T) {
	source := audio.NewHTTPSource(":0", "", discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/text", bytes.NewReader([]byte("打开客厅灯")))
	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusAccepted)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["text"] != "打开客厅灯" {
		t.Errorf("echoed text: got %v", body["text"])
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	queued, err := source.NextCommand(ctx)
	if err != nil {
		t.Fatalf("NextCommand: %v", err)
	}
	if string(queued) != domain.TextCommandPrefix+"打开客厅灯" {
		t.Errorf("queued: got %q", queued)
	}
}

func TestHTTPSource_EmptyBodiesRejected(t *testing.T) {
	source := audio.NewHTTPSource(":0", "", discardLogger())

	for _, path := range []string{"/audio", "/text"} {
		rec := httptest.NewRecorder()
		source.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHTTPSource_AuthToken(t *testing.T) {
	authToken := "test-secret-token-123"
	source := audio.NewHTTPSource(":0", authToken, discardLogger())
	handler := source.Handler()

	tests := []struct {
		name       string
		path       string
		header     string
		query      string
		wantStatus int
	}{
		{name: "valid token in header", path: "/text", header: authToken, wantStatus: http.StatusAccepted},
		{name: "valid token in query", path: "/text", query: authToken, wantStatus: http.StatusAccepted},
		{name: "audio with token", path: "/audio", header: authToken, wantStatus: http.StatusAccepted},
		{name: "invalid token", path: "/text", header: "wrong-token", wantStatus: http.StatusUnauthorized},
		{name: "missing token", path: "/audio", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.path
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte("关灯")))
			if tt.header != "" {
				req.Header.Set("X-Auth-Token", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status code: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHTTPSource_HealthBeforeStart(t *testing.T) {
	source := audio.NewHTTPSource(":0", "secret", discardLogger())

	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status code: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHTTPSource_QueueFull(t *testing.T) {
	source := audio.NewHTTPSource(":0", "", discardLogger())
	handler := source.Handler()

	var last int
	for i := 0; i < 11; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/audio", bytes.NewReader([]byte("pcm"))))
		last = rec.Code
	}
	if last != http.StatusServiceUnavailable {
		t.Errorf("11th request: got %d, want %d", last, http.StatusServiceUnavailable)
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	limiter := audio.NewRateLimiter(2, time.Minute)

	if !limiter.Allow("a") || !limiter.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if limiter.Allow("a") {
		t.Error("third request within the window should be rejected")
	}
	if !limiter.Allow("b") {
		t.Error("other clients have their own budget")
	}
}
