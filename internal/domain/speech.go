package domain

type AudioFormat string

const AudioFormatWAV AudioFormat = "wav"

type AudioCodec string

const AudioCodecPCM AudioCodec = "pcm"

// SpeechMetadata describes the audio a caller is about to submit.
type SpeechMetadata struct {
	Language   string
	Format     AudioFormat
	Codec      AudioCodec
	BitRate    int
	SampleRate int
	Channels   int
}

// SpeechCapabilities lists what a transcription backend accepts.
type SpeechCapabilities struct {
	Languages   []string
	Formats     []AudioFormat
	Codecs      []AudioCodec
	BitRates    []int
	SampleRates []int
	Channels    []int
}

// Supports reports whether every field of meta is within the capability set.
func (c SpeechCapabilities) Supports(meta SpeechMetadata) bool {
	return contains(c.Languages, meta.Language) &&
		contains(c.Formats, meta.Format) &&
		contains(c.Codecs, meta.Codec) &&
		contains(c.BitRates, meta.BitRate) &&
		contains(c.SampleRates, meta.SampleRate) &&
		contains(c.Channels, meta.Channels)
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
