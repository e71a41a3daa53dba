package domain

// TextCommandPrefix marks payloads from an audio source that carry text
// instead of audio.
const TextCommandPrefix = "__TEXT__:"

// ChatTurn is one user utterance sent to a conversation agent.
// ConversationID is opaque and forwarded unchanged; nil means none.
type ChatTurn struct {
	Text           string
	Language       string
	ConversationID *string
	Context        map[string]any
}
