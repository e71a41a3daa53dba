package domain

import (
	"errors"
	"time"
)

const (
	DomainSTT          = "homingai_stt"
	DomainConversation = "homingai_conversation"
)

const (
	FieldAPIKey      = "api_key"
	FieldAccessToken = "access_token"
)

var (
	ErrCannotConnect = errors.New("cannot connect")
	ErrInvalidAuth   = errors.New("invalid auth")
	ErrNotConfigured = errors.New("integration not configured")
	ErrEntryNotFound = errors.New("entry not found")
)

// Entry is a configured integration instance. UniqueID holds the
// credential value and is the only uniqueness key within a domain.
type Entry struct {
	ID        string            `json:"id"`
	Domain    string            `json:"domain"`
	Title     string            `json:"title"`
	UniqueID  string            `json:"unique_id"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}
