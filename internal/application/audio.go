package application

import (
	"context"

	"homingai-bridge/internal/domain"
)

type AudioSource interface {
	Start(ctx context.Context) error
	Stop() error
	NextCommand(ctx context.Context) ([]byte, error)
	Name() string
}

// DefaultSpeechMetadata describes what the bundled audio sources produce:
// 16-bit PCM WAV, 16 kHz, mono.
func DefaultSpeechMetadata(language string) domain.SpeechMetadata {
	return domain.SpeechMetadata{
		Language:   language,
		Format:     domain.AudioFormatWAV,
		Codec:      domain.AudioCodecPCM,
		BitRate:    16,
		SampleRate: 16000,
		Channels:   1,
	}
}
