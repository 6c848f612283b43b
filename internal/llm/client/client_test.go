package llmclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contractreview/internal/llm"
	"contractreview/internal/review"
	"contractreview/internal/tester"
)

func completionsHandler(t *testing.T, fn http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer auth, got %q", got)
		}
		fn(w, r)
	}))
}

func TestCompleteSuccessTrimsContent(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"  hello  "}}]}`)
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	out, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	tester.NoErr(t, err)
	tester.Eq(t, out, "hello")
}

func TestCompleteEmptyContentIsDecodeFailure(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"   "}}]}`)
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	kind, ok := review.KindOf(err)
	tester.True(t, ok)
	tester.Eq(t, kind, review.ErrDecodeFailed)
}

func TestCompleteErrorEnvelopeMessageIsSurfacedVerbatim(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	tester.Err(t, err)
	tester.Eq(t, err.Error(), "invalid api key")
}

func TestCompleteGenericHTTPStatusError(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "gateway exploded")
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	tester.Err(t, err)
	tester.Eq(t, err.Error(), "HTTP 502")
}

func TestMissingAPIKey(t *testing.T) {
	c := New("https://api.example.com", "   ")
	_, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	kind, ok := review.KindOf(err)
	tester.True(t, ok)
	tester.Eq(t, kind, review.ErrMissingAPIKey)
}

func TestInvalidEndpoint(t *testing.T) {
	c := New("not a url", "test-key")
	_, err := c.Complete(context.Background(), llm.Request{Model: "m"})
	kind, ok := review.KindOf(err)
	tester.True(t, ok)
	tester.Eq(t, kind, review.ErrInvalidEndpoint)
}

func TestCompletionsURLStripsTrailingSlash(t *testing.T) {
	c := New("https://api.example.com/v1/", "k")
	u, err := c.completionsURL()
	tester.NoErr(t, err)
	tester.Eq(t, u, "https://api.example.com/v1/chat/completions")
}

func sseBody(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func collect(t *testing.T, c *Client, ctx context.Context) []llm.Event {
	t.Helper()
	events, err := c.Stream(ctx, llm.Request{Model: "m"})
	tester.NoErr(t, err)
	var out []llm.Event
	for ev := range events {
		out = append(out, ev)
	}
	return out
}

func TestStreamThinkingFlushedBeforeResponse(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseBody(
			`data: {"choices":[{"delta":{"reasoning_content":"short"}}]}`,
			`data: {"choices":[{"delta":{"reasoning_content":" more reasoning text here"}}]}`,
			`data: {"choices":[{"delta":{"content":"C1"}}]}`,
			`data: {"choices":[{"delta":{"content":"C2"}}]}`,
			`data: [DONE]`,
		))
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	events := collect(t, c, context.Background())

	var kinds []llm.EventKind
	var thinking, response string
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
		switch ev.Kind {
		case llm.EventThinking:
			thinking += ev.Text
		case llm.EventResponse:
			response += ev.Text
		}
	}
	tester.Eq(t, thinking, "short more reasoning text here")
	tester.Eq(t, response, "C1C2")
	// All thinking must land before the first response fragment.
	firstResponse := -1
	lastThinking := -1
	for i, k := range kinds {
		if k == llm.EventResponse && firstResponse < 0 {
			firstResponse = i
		}
		if k == llm.EventThinking {
			lastThinking = i
		}
	}
	tester.True(t, lastThinking < firstResponse, "thinking after response")
	tester.Eq(t, kinds[len(kinds)-1], llm.EventDone)
}

func TestStreamTrailingThinkingFlushedAtEnd(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseBody(
			`data: {"choices":[{"delta":{"reasoning_content":"tail"}}]}`,
			`data: [DONE]`,
		))
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	events := collect(t, c, context.Background())
	tester.Eq(t, len(events), 2)
	tester.Eq(t, events[0].Kind, llm.EventThinking)
	tester.Eq(t, events[0].Text, "tail")
	tester.Eq(t, events[1].Kind, llm.EventDone)
}

func TestStreamEmptyDeltaProducesNoEvent(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseBody(
			`data: {"choices":[{"delta":{}}]}`,
			`data: {"choices":[{"delta":{"content":"ok"}}]}`,
			`data: [DONE]`,
		))
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	events := collect(t, c, context.Background())
	tester.Eq(t, len(events), 2)
	tester.Eq(t, events[0].Kind, llm.EventResponse)
	tester.Eq(t, events[0].Text, "ok")
}

func TestStreamMalformedLinesAreSkipped(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseBody(
			`: keep-alive comment`,
			`data: {not json`,
			`random noise`,
			`data: {"choices":[{"delta":{"content":"ok"}}]}`,
			`data: [DONE]`,
		))
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	events := collect(t, c, context.Background())
	tester.Eq(t, len(events), 2)
	tester.Eq(t, events[0].Text, "ok")
	tester.Eq(t, events[1].Kind, llm.EventDone)
}

func TestStreamFragmentProbeOrder(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sseBody(
			`data: {"choices":[{"delta":{"content":null,"message":"from-message"}}]}`,
			`data: {"choices":[{"delta":{"text":"from-text"}}]}`,
			`data: [DONE]`,
		))
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	events := collect(t, c, context.Background())
	tester.Eq(t, len(events), 3)
	tester.Eq(t, events[0].Text, "from-message")
	tester.Eq(t, events[1].Text, "from-text")
}

func TestStreamNon2xxFailsBeforeLineProcessing(t *testing.T) {
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
	})
	defer srv.Close()

	c := New(srv.URL, "test-key")
	_, err := c.Stream(context.Background(), llm.Request{Model: "m"})
	tester.Err(t, err)
	tester.Eq(t, err.Error(), "rate limited")
}

func TestStreamCancellationStopsEvents(t *testing.T) {
	release := make(chan struct{})
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fl, _ := w.(http.Flusher)
		fmt.Fprintln(w, `data: {"choices":[{"delta":{"content":"first"}}]}`)
		if fl != nil {
			fl.Flush()
		}
		<-release
		fmt.Fprintln(w, `data: {"choices":[{"delta":{"content":"late"}}]}`)
	})
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	c := New(srv.URL, "test-key")
	events, err := c.Stream(ctx, llm.Request{Model: "m"})
	tester.NoErr(t, err)

	first := <-events
	tester.Eq(t, first.Kind, llm.EventResponse)
	tester.Eq(t, first.Text, "first")

	cancel()
	// The channel must close without delivering further content events.
	for ev := range events {
		if ev.Kind == llm.EventResponse {
			t.Fatalf("event delivered after cancellation: %+v", ev)
		}
	}
}

func TestStreamNoDeliveryToReadyReceiverAfterCancel(t *testing.T) {
	release := make(chan struct{})
	srv := completionsHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fl, _ := w.(http.Flusher)
		fmt.Fprintln(w, `data: {"choices":[{"delta":{"content":"first"}}]}`)
		if fl != nil {
			fl.Flush()
		}
		<-release
		fmt.Fprintln(w, `data: {"choices":[{"delta":{"content":"late"}}]}`)
		if fl != nil {
			fl.Flush()
		}
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := New(srv.URL, "test-key")
	events, err := c.Stream(ctx, llm.Request{Model: "m"})
	tester.NoErr(t, err)

	first := <-events
	tester.Eq(t, first.Text, "first")

	// Cancel, then hand the upstream another fragment while this receiver
	// stays parked on the channel. The fragment must not be delivered even
	// though the receive would succeed immediately.
	cancel()
	close(release)
	for ev := range events {
		if ev.Kind == llm.EventResponse || ev.Kind == llm.EventThinking {
			t.Fatalf("event delivered after cancellation: %+v", ev)
		}
	}
}
