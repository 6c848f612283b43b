// Package llm defines the chat-completion client surface used by the review
// pipeline and the conversation engine, plus a middleware chain for
// cross-cutting concerns.
package llm

import "context"

// Message is one chat turn sent on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single chat-completion call.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// EventKind tags the typed events emitted by a streaming call.
type EventKind int

const (
	// EventThinking carries a flushed chunk of the reasoning side-channel.
	EventThinking EventKind = iota
	// EventResponse carries a fragment of the answer content.
	EventResponse
	// EventDone signals successful end of stream. Terminal.
	EventDone
	// EventFailed signals the stream died mid-flight; Err is set. Terminal.
	EventFailed
)

// Event is one element of a streaming response.
type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// ChatClient is implemented by chat-completion providers.
type ChatClient interface {
	Name() string
	// Complete performs one non-streaming call and returns the trimmed
	// response text.
	Complete(ctx context.Context, req Request) (string, error)
	// Stream performs one streaming call. The returned channel delivers
	// thinking and response events in wire order and is closed after a
	// terminal event. Pre-flight failures (bad endpoint, HTTP error status)
	// are returned directly. Cancelling ctx stops the stream; no further
	// events are delivered.
	Stream(ctx context.Context, req Request) (<-chan Event, error)
	Close() error
}
