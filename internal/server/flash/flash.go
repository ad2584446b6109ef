// Package flash keeps one-shot user notices in a signed session cookie so
// they survive the redirect back to the upload page.
package flash

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "ps-reviewer"

// Category of a notice, used as a CSS class by the page template.
const (
	CategoryError   = "error"
	CategorySuccess = "success"
)

var categories = []string{CategoryError, CategorySuccess}

// Message is a single notice.
type Message struct {
	Category string
	Text     string
}

// Store reads and writes notices.
type Store struct {
	sessions *sessions.CookieStore
}

// NewStore creates a cookie-backed store signed with secret.
func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{sessions: cs}
}

// Add queues a notice for the next page render.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, category, text string) error {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil && session == nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	session.AddFlash(text, category)
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Pop returns and clears every queued notice. A missing or tampered cookie
// yields no notices.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Message {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil || session == nil {
		return nil
	}

	var messages []Message
	for _, category := range categories {
		for _, f := range session.Flashes(category) {
			if text, ok := f.(string); ok {
				messages = append(messages, Message{Category: category, Text: text})
			}
		}
	}
	if len(messages) > 0 {
		_ = session.Save(r, w)
	}
	return messages
}
