// Package llmclient is an HTTP client for OpenAI-compatible chat-completion
// endpoints, covering both the single-shot JSON call and the SSE style
// streaming response with a reasoning side-channel.
package llmclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contractreview/internal/llm"
	"contractreview/internal/review"
)

// thinkingFlushRunes is the buffer threshold for the reasoning side-channel.
// Fragments are accumulated and flushed once the buffer grows past this many
// runes, and unconditionally before any response fragment and at stream end.
const thinkingFlushRunes = 20

// Client talks to one OpenAI-compatible /chat/completions endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	name    string
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests mostly).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithName overrides the client name used in logs.
func WithName(name string) Option {
	return func(c *Client) { c.name = name }
}

// New creates a client for the given base URL and key. Credentials are
// validated lazily on first call so a misconfigured client can still be
// constructed and probed.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		// Streaming responses can be long-lived; the per-request context
		// carries the real deadline.
		http:    &http.Client{Timeout: 5 * time.Minute},
		baseURL: baseURL,
		apiKey:  apiKey,
		name:    "openai-compatible",
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Name() string { return c.name }
func (c *Client) Close() error { return nil }

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream,omitempty"`
}

type wireResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// wireDelta carries the fields probed out of choices[0].delta. Raw messages
// so null, missing and non-string values can be told apart.
type wireDelta struct {
	ReasoningContent string          `json:"reasoning_content"`
	Content          json.RawMessage `json:"content"`
	Message          json.RawMessage `json:"message"`
	Text             json.RawMessage `json:"text"`
}

type wireChunk struct {
	Choices []struct {
		Delta wireDelta `json:"delta"`
	} `json:"choices"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// completionsURL normalizes the configured base URL and appends the
// chat-completions path.
func (c *Client) completionsURL() (string, error) {
	base := strings.TrimSpace(c.baseURL)
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", review.NewError(review.ErrInvalidEndpoint, base)
	}
	return strings.TrimRight(base, "/") + "/chat/completions", nil
}

func (c *Client) newRequest(ctx context.Context, req llm.Request, stream bool) (*http.Request, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, review.NewError(review.ErrMissingAPIKey, "")
	}
	endpoint, err := c.completionsURL()
	if err != nil {
		return nil, err
	}
	body := wireRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Stream:      stream,
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, wireMessage{Role: m.Role, Content: m.Content})
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, review.NewServiceError(err.Error())
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, review.NewError(review.ErrInvalidEndpoint, endpoint)
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if stream {
		hreq.Header.Set("Accept", "text/event-stream")
	}
	return hreq, nil
}

// statusError drains the body of a non-2xx response and surfaces the
// provider's {error:{message}} envelope when present.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && strings.TrimSpace(env.Error.Message) != "" {
		return review.NewServiceError(env.Error.Message)
	}
	return review.NewServiceError(fmt.Sprintf("HTTP %d", resp.StatusCode))
}

// Complete issues one non-streaming chat-completion call.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	hreq, err := c.newRequest(ctx, req, false)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(hreq)
	if err != nil {
		return "", review.NewServiceError(err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError(resp)
	}
	var out wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", review.NewError(review.ErrDecodeFailed, err.Error())
	}
	if len(out.Choices) == 0 {
		return "", review.NewError(review.ErrDecodeFailed, "no choices in response")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", review.NewError(review.ErrDecodeFailed, "empty response content")
	}
	return text, nil
}

// Stream issues one streaming chat-completion call and translates the SSE
// lines into typed events. The channel is closed after EventDone or
// EventFailed, or silently when ctx is cancelled.
func (c *Client) Stream(ctx context.Context, req llm.Request) (<-chan llm.Event, error) {
	hreq, err := c.newRequest(ctx, req, true)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, review.NewServiceError(err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}

	events := make(chan llm.Event)
	go func() {
		defer close(events)
		defer resp.Body.Close()
		c.readStream(ctx, resp.Body, events)
	}()
	return events, nil
}

// readStream consumes data: lines until [DONE], EOF or cancellation.
func (c *Client) readStream(ctx context.Context, body io.Reader, events chan<- llm.Event) {
	// emit delivers one event unless the caller has gone away. The Err
	// check comes first so a ready receiver cannot race a cancelled
	// context into one more delivery.
	emit := func(ev llm.Event) bool {
		if ctx.Err() != nil {
			return false
		}
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var thinking strings.Builder
	flushThinking := func() bool {
		if thinking.Len() == 0 {
			return true
		}
		text := thinking.String()
		thinking.Reset()
		return emit(llm.Event{Kind: llm.EventThinking, Text: text})
	}

	sc := bufio.NewScanner(body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			if !flushThinking() {
				return
			}
			emit(llm.Event{Kind: llm.EventDone})
			return
		}
		var chunk wireChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Keep-alives and malformed lines never abort the stream.
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta
		if delta.ReasoningContent != "" {
			thinking.WriteString(delta.ReasoningContent)
			if len([]rune(thinking.String())) > thinkingFlushRunes {
				if !flushThinking() {
					return
				}
			}
		}
		if fragment, ok := probeFragment(delta); ok {
			if !flushThinking() {
				return
			}
			if !emit(llm.Event{Kind: llm.EventResponse, Text: fragment}) {
				return
			}
		}
	}
	if ctx.Err() != nil {
		return
	}
	if err := sc.Err(); err != nil {
		emit(llm.Event{Kind: llm.EventFailed, Err: review.NewServiceError(err.Error())})
		return
	}
	// Stream ended without [DONE]; treat as a normal end.
	if !flushThinking() {
		return
	}
	emit(llm.Event{Kind: llm.EventDone})
}

// probeFragment extracts the response fragment from a delta, trying
// content, message, text in that order. Only non-null, non-empty strings
// count.
func probeFragment(d wireDelta) (string, bool) {
	for _, raw := range []json.RawMessage{d.Content, d.Message, d.Text} {
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s == "" {
			continue
		}
		return s, true
	}
	return "", false
}
