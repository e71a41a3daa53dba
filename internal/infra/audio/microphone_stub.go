//go:build !portaudio

package audio

import (
	"context"
	"errors"
	"log/slog"
)

var errNoMicrophone = errors.New("microphone source not available: rebuild with -tags portaudio")

// MicrophoneSource is a placeholder used when built without portaudio.
type MicrophoneSource struct{}

func NewMicrophoneSource(_ int, _ *slog.Logger) *MicrophoneSource {
	return &MicrophoneSource{}
}

func (m *MicrophoneSource) Name() string {
	return "microphone"
}

func (m *MicrophoneSource) Start(_ context.Context) error {
	return errNoMicrophone
}

func (m *MicrophoneSource) Stop() error {
	return nil
}

func (m *MicrophoneSource) NextCommand(_ context.Context) ([]byte, error) {
	return nil, errNoMicrophone
}
