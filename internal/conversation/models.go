package conversation

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation. Content is mutable only while an
// assistant message is still streaming.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Thinking  string    `json:"thinking_content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(role, content string) Message {
	return Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Session is one chat thread scoped to a single review result.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(title string) Session {
	now := time.Now()
	return Session{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) Append(m Message) {
	s.Messages = append(s.Messages, m)
	s.UpdatedAt = time.Now()
}

// SetTitle renames the session and bumps UpdatedAt.
func (s *Session) SetTitle(title string) {
	s.Title = title
	s.UpdatedAt = time.Now()
}

// Touch bumps UpdatedAt.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

func cloneSession(s Session) Session {
	msgs := make([]Message, len(s.Messages))
	copy(msgs, s.Messages)
	s.Messages = msgs
	return s
}

// Recent returns at most limit trailing messages.
func (s *Session) Recent(limit int) []Message {
	if limit <= 0 || len(s.Messages) <= limit {
		out := make([]Message, len(s.Messages))
		copy(out, s.Messages)
		return out
	}
	out := make([]Message, limit)
	copy(out, s.Messages[len(s.Messages)-limit:])
	return out
}

// Collection holds every session of one review result. Sessions are
// addressed by id; slice order carries no meaning.
type Collection struct {
	Sessions []Session `json:"sessions"`
}

func (c *Collection) CreateSession(title string) *Session {
	c.Sessions = append(c.Sessions, NewSession(title))
	return &c.Sessions[len(c.Sessions)-1]
}

func (c *Collection) DeleteSession(id uuid.UUID) {
	kept := c.Sessions[:0]
	for _, s := range c.Sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.Sessions = kept
}

// Session returns a pointer into the backing slice, valid until the next
// append or delete. Value receiver so lookups work on copies returned by
// Engine.Collection.
func (c Collection) Session(id uuid.UUID) *Session {
	for i := range c.Sessions {
		if c.Sessions[i].ID == id {
			return &c.Sessions[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand outside the owning engine.
func (c Collection) Clone() Collection {
	out := Collection{Sessions: make([]Session, len(c.Sessions))}
	for i, s := range c.Sessions {
		out.Sessions[i] = cloneSession(s)
	}
	return out
}
