package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
	"homingai-bridge/internal/infra/audio"
	"homingai-bridge/internal/infra/homingai"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestPipeline_FileSourceThroughHomingAI(t *testing.T) {
	color.NoColor = true
	srv := fakeHomingAI(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cmd.wav"), audio.EncodeWAV(make([]int16, 160), 16000), 0644); err != nil {
		t.Fatalf("writing wav: %v", err)
	}

	client := homingai.NewClientWithURL(srv.URL, homingai.NewSession(5*time.Second))
	factory := homingai.NewFactory(client, logger)
	stt := factory.SpeechToText(domain.Entry{Data: map[string]string{domain.FieldAPIKey: testAPIKey}})
	agent := factory.Conversation(domain.Entry{Data: map[string]string{domain.FieldAccessToken: testAccessToken}})

	out := &syncBuffer{}
	assistant := application.NewAssistant(
		audio.NewFileSource(dir, logger), stt, agent, &consoleResponder{out: out}, homingai.SpeechLanguage, logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		assistant.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	want := "好的: 打开客厅灯"
	for !strings.Contains(out.String(), want) {
		select {
		case <-ctx.Done():
			t.Fatalf("pipeline output never contained %q: %q", want, out.String())
		case <-time.After(20 * time.Millisecond):
		}
	}

	if !strings.Contains(out.String(), "> 打开客厅灯") {
		t.Errorf("transcript not echoed: %q", out.String())
	}
}
