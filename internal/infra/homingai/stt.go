package homingai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"homingai-bridge/internal/domain"
)

const (
	SpeechLanguage = "zh-CN"

	// UnknownSpeechError is reported when a failed transcription carries no
	// usable error message.
	UnknownSpeechError = "Unknown error"
)

// SpeechToText posts complete audio buffers to the HomingAI ASR endpoint.
type SpeechToText struct {
	client *Client
	apiKey string
	logger *slog.Logger
}

func NewSpeechToText(client *Client, apiKey string, logger *slog.Logger) *SpeechToText {
	return &SpeechToText{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

type asrResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Capabilities is fixed; callers must reject other audio before calling
// Transcribe.
func (s *SpeechToText) Capabilities() domain.SpeechCapabilities {
	return domain.SpeechCapabilities{
		Languages:   []string{SpeechLanguage},
		Formats:     []domain.AudioFormat{domain.AudioFormatWAV},
		Codecs:      []domain.AudioCodec{domain.AudioCodecPCM},
		BitRates:    []int{16},
		SampleRates: []int{16000},
		Channels:    []int{1},
	}
}

// Transcribe drains audio into memory and submits it in one request,
// even when the buffer is empty.
func (s *SpeechToText) Transcribe(ctx context.Context, meta domain.SpeechMetadata, audio io.Reader) (result domain.Result) {
	messages := speechMessagesFor(meta.Language)
	defer recoverFailure(s.logger, "speech to text", &result, messages)

	s.logger.Debug("speech to text started")

	var buf []byte
	if audio != nil {
		var err error
		buf, err = io.ReadAll(audio)
		if err != nil {
			s.logger.Error("reading audio stream", "error", err)
			return failure(fmt.Errorf("%w: reading audio: %v", domain.ErrCannotConnect, err), messages)
		}
	}

	s.logger.Debug("processing audio stream", "bytes", len(buf))

	resp, err := s.client.post(ctx, pathASR, s.apiKey, "application/octet-stream", buf)
	if err != nil {
		s.logger.Error("speech to text request failed", "error", err)
		return failure(err, messages)
	}

	var body asrResponse
	decodeErr := json.Unmarshal(resp.Body, &body)

	if resp.StatusCode != http.StatusOK {
		errMsg := body.Error
		if decodeErr != nil || errMsg == "" {
			errMsg = UnknownSpeechError
		}
		s.logger.Error("speech to text API error", "status", resp.StatusCode, "error", errMsg)
		return domain.Failure(errMsg, domain.CauseRemote)
	}

	if decodeErr != nil {
		s.logger.Error("decoding speech to text response", "error", decodeErr)
		return failure(decodeErr, messages)
	}

	return domain.Success(body.Text)
}
