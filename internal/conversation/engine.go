package conversation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"contractreview/internal/llm"
	"contractreview/internal/prompt"
	"contractreview/internal/settings"
)

// titleRunes is how much of the first user message becomes the session
// title before the ellipsis is appended.
const titleRunes = 20

// historyLimit is how many trailing messages are replayed to the model on
// each send.
const historyLimit = 6

// ReviewContext is the read-only review material a conversation is scoped
// to: the original contract text and the five textual review outputs.
type ReviewContext struct {
	ContractText    string
	Overview        string
	FoundationAudit string
	BusinessAudit   string
	LegalAudit      string
	AuditSummary    string
}

// Render assembles the context block sent to the model, contract text first,
// then the review outputs under fixed section headers.
func (rc ReviewContext) Render(l prompt.Language) string {
	sec := prompt.Sections(l)
	var b strings.Builder
	b.WriteString(sec.Contract + "\n")
	b.WriteString(rc.ContractText)
	b.WriteString("\n\n")
	b.WriteString(sec.ReviewHead + "\n")
	b.WriteString(sec.Overview + "\n" + rc.Overview + "\n\n")
	b.WriteString(sec.Foundation + "\n" + rc.FoundationAudit + "\n\n")
	b.WriteString(sec.Business + "\n" + rc.BusinessAudit + "\n\n")
	b.WriteString(sec.Legal + "\n" + rc.LegalAudit + "\n\n")
	b.WriteString(sec.Summary + "\n" + rc.AuditSummary + "\n")
	return b.String()
}

// StreamEventKind tags live updates emitted while an assistant reply
// streams in.
type StreamEventKind int

const (
	StreamThinking StreamEventKind = iota
	StreamResponse
	StreamDone
	StreamFailed
)

// StreamEvent is one live update for a session's in-flight reply.
type StreamEvent struct {
	SessionID uuid.UUID
	MessageID uuid.UUID
	Kind      StreamEventKind
	Text      string
	Err       error
}

// ClientFactory builds the streaming chat client for one endpoint.
type ClientFactory func(baseURL, apiKey string) llm.ChatClient

// Persister receives the conversation collection after every mutation. The
// engine never fails on persistence; the persister owns error handling.
type Persister func(resultID uuid.UUID, snapshot Collection)

// Engine manages the chat sessions attached to one review result. All state
// is guarded by mu; the in-flight assistant message has exactly one writer
// (the active stream) and any number of snapshot readers.
type Engine struct {
	newClient ClientFactory
	persist   Persister
	observer  func(StreamEvent)
	log       *log.Logger

	mu         sync.Mutex
	resultID   uuid.UUID
	reviewCtx  ReviewContext
	collection Collection
	inflight   map[uuid.UUID]*inflightSend
}

// inflightSend identifies one live send so its cleanup cannot unregister a
// replacement send on the same session.
type inflightSend struct {
	cancel context.CancelFunc
}

// EngineOption mutates an Engine during construction.
type EngineOption func(*Engine)

// WithClientFactory replaces the transport used for sends.
func WithClientFactory(f ClientFactory) EngineOption {
	return func(e *Engine) { e.newClient = f }
}

// WithPersister installs the write-back hook called after every mutation.
func WithPersister(p Persister) EngineOption {
	return func(e *Engine) { e.persist = p }
}

// WithObserver installs a live-update listener. Events are delivered from
// the sending goroutine; the observer must not block.
func WithObserver(fn func(StreamEvent)) EngineOption {
	return func(e *Engine) { e.observer = fn }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

func NewEngine(factory ClientFactory, opts ...EngineOption) *Engine {
	e := &Engine{
		newClient: factory,
		persist:   func(uuid.UUID, Collection) {},
		observer:  func(StreamEvent) {},
		log:       log.Default(),
		inflight:  map[uuid.UUID]*inflightSend{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Attach scopes the engine to one review result, replacing any previous
// state. In-flight sends for the old result are cancelled.
func (e *Engine) Attach(resultID uuid.UUID, rc ReviewContext, c Collection) {
	e.CancelAll()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resultID = resultID
	e.reviewCtx = rc
	e.collection = c.Clone()
}

// Collection returns a deep copy of the current session state.
func (e *Engine) Collection() Collection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.collection.Clone()
}

// CreateSession adds an empty session with an auto-numbered title and
// persists.
func (e *Engine) CreateSession(l prompt.Language) Session {
	e.mu.Lock()
	title := fmt.Sprintf("对话%d", len(e.collection.Sessions)+1)
	if prompt.Normalize(l) == prompt.English {
		title = fmt.Sprintf("Conversation %d", len(e.collection.Sessions)+1)
	}
	s := e.collection.CreateSession(title)
	out := cloneSession(*s)
	e.persistLocked()
	e.mu.Unlock()
	return out
}

// DeleteSession removes a session, cancelling its in-flight send first.
func (e *Engine) DeleteSession(id uuid.UUID) {
	e.Cancel(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.collection.DeleteSession(id)
	e.persistLocked()
}

// RenameSession sets a session title. Blank titles are ignored.
func (e *Engine) RenameSession(id uuid.UUID, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.collection.Session(id); s != nil {
		s.SetTitle(title)
		e.persistLocked()
	}
}

// ClearSession drops all messages of a session but keeps the session.
func (e *Engine) ClearSession(id uuid.UUID) {
	e.Cancel(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.collection.Session(id); s != nil {
		s.Messages = nil
		e.persistLocked()
	}
}

// Cancel stops the in-flight send of a session, if any. Content already
// flushed into the assistant message stays.
func (e *Engine) Cancel(sessionID uuid.UUID) {
	e.mu.Lock()
	entry := e.inflight[sessionID]
	delete(e.inflight, sessionID)
	e.mu.Unlock()
	if entry != nil {
		entry.cancel()
	}
}

// CancelAll stops every in-flight send.
func (e *Engine) CancelAll() {
	e.mu.Lock()
	entries := make([]*inflightSend, 0, len(e.inflight))
	for _, s := range e.inflight {
		entries = append(entries, s)
	}
	e.inflight = map[uuid.UUID]*inflightSend{}
	e.mu.Unlock()
	for _, s := range entries {
		s.cancel()
	}
}

// SendMessage appends the user's message to the session and streams the
// assistant's reply into a placeholder message, visible to snapshot readers
// as it grows. Blank input is a no-op. Only one send runs per session; a
// new send cancels the previous one. The call blocks until the stream
// settles.
func (e *Engine) SendMessage(ctx context.Context, sessionID uuid.UUID, text string,
	st settings.Settings, creds settings.Credentials) error {

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lang := prompt.Normalize(st.Language)

	e.mu.Lock()
	session := e.collection.Session(sessionID)
	if session == nil {
		e.mu.Unlock()
		return fmt.Errorf("conversation: unknown session %s", sessionID)
	}
	isFirst := len(session.Messages) == 0
	history := session.Recent(historyLimit)
	session.Append(NewMessage(RoleUser, text))
	if isFirst {
		session.SetTitle(deriveTitle(text))
	}
	placeholder := NewMessage(RoleAssistant, "")
	session.Append(placeholder)
	placeholderID := placeholder.ID

	messages := e.buildMessages(lang, history, text)

	// One send per session: replace any previous in-flight task.
	if prev := e.inflight[sessionID]; prev != nil {
		prev.cancel()
	}
	sctx, cancel := context.WithCancel(ctx)
	entry := &inflightSend{cancel: cancel}
	e.inflight[sessionID] = entry
	e.persistLocked()
	e.mu.Unlock()

	defer func() {
		cancel()
		e.mu.Lock()
		// A replacement send may have re-registered the session; only
		// unregister our own entry.
		if e.inflight[sessionID] == entry {
			delete(e.inflight, sessionID)
		}
		e.mu.Unlock()
	}()

	client := e.newClient(st.Provider.BaseURL, creds.APIKey)
	defer client.Close()

	events, err := client.Stream(sctx, llm.Request{
		Model:       st.Provider.ReasonerModel,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		e.settleFailure(sessionID, placeholderID, err)
		return err
	}

	for ev := range events {
		switch ev.Kind {
		case llm.EventThinking:
			e.appendThinking(sessionID, placeholderID, ev.Text)
		case llm.EventResponse:
			e.appendContent(sessionID, placeholderID, ev.Text)
		case llm.EventDone:
			e.settleSuccess(sessionID, placeholderID)
			return nil
		case llm.EventFailed:
			e.settleFailure(sessionID, placeholderID, ev.Err)
			return ev.Err
		}
	}
	// Channel closed without a terminal event: the stream was cancelled.
	// Flushed content stays; nothing is rolled back.
	return sctx.Err()
}

func (e *Engine) buildMessages(lang prompt.Language, history []Message, question string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{
		Role:    "system",
		Content: prompt.ConversationSystem(lang, e.reviewCtx.Render(lang)),
	})
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: question})
	return msgs
}

func (e *Engine) appendThinking(sessionID, messageID uuid.UUID, chunk string) {
	e.mu.Lock()
	if m := e.message(sessionID, messageID); m != nil {
		m.Thinking += chunk
	}
	e.mu.Unlock()
	e.observer(StreamEvent{SessionID: sessionID, MessageID: messageID, Kind: StreamThinking, Text: chunk})
}

func (e *Engine) appendContent(sessionID, messageID uuid.UUID, chunk string) {
	e.mu.Lock()
	if m := e.message(sessionID, messageID); m != nil {
		m.Content += chunk
	}
	e.mu.Unlock()
	e.observer(StreamEvent{SessionID: sessionID, MessageID: messageID, Kind: StreamResponse, Text: chunk})
}

func (e *Engine) settleSuccess(sessionID, messageID uuid.UUID) {
	e.mu.Lock()
	if s := e.collection.Session(sessionID); s != nil {
		s.Touch()
	}
	e.persistLocked()
	e.mu.Unlock()
	e.observer(StreamEvent{SessionID: sessionID, MessageID: messageID, Kind: StreamDone})
}

// settleFailure removes the placeholder when nothing was flushed into it,
// so a half-formed empty message never survives a reload, then persists.
func (e *Engine) settleFailure(sessionID, messageID uuid.UUID, err error) {
	e.mu.Lock()
	if s := e.collection.Session(sessionID); s != nil {
		if m := e.message(sessionID, messageID); m != nil && m.Content == "" {
			removeMessage(s, messageID)
		}
		s.Touch()
	}
	e.persistLocked()
	e.mu.Unlock()
	e.observer(StreamEvent{SessionID: sessionID, MessageID: messageID, Kind: StreamFailed, Err: err})
}

// message finds the given message; callers hold mu.
func (e *Engine) message(sessionID, messageID uuid.UUID) *Message {
	s := e.collection.Session(sessionID)
	if s == nil {
		return nil
	}
	for i := range s.Messages {
		if s.Messages[i].ID == messageID {
			return &s.Messages[i]
		}
	}
	return nil
}

// persistLocked snapshots the collection and hands it to the persister;
// callers hold mu.
func (e *Engine) persistLocked() {
	if e.resultID == uuid.Nil {
		return
	}
	e.persist(e.resultID, e.collection.Clone())
}

func removeMessage(s *Session, id uuid.UUID) {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages = append(s.Messages[:i], s.Messages[i+1:]...)
			return
		}
	}
}

// deriveTitle turns the first user message into a session title: the first
// 20 runes plus an ellipsis when longer.
func deriveTitle(text string) string {
	if utf8.RuneCountInString(text) <= titleRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:titleRunes]) + "…"
}
