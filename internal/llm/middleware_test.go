package llm

import (
	"context"
	"testing"

	"contractreview/internal/tester"
)

type tagClient struct {
	name string
}

func (c *tagClient) Name() string { return c.name }
func (c *tagClient) Close() error { return nil }
func (c *tagClient) Complete(ctx context.Context, req Request) (string, error) {
	return c.name, nil
}
func (c *tagClient) Stream(ctx context.Context, req Request) (<-chan Event, error) {
	ch := make(chan Event, 1)
	ch <- Event{Kind: EventDone}
	close(ch)
	return ch, nil
}

func tag(s string) Middleware {
	return func(next ChatClient) ChatClient {
		return &tagClient{name: s + ":" + next.Name()}
	}
}

func TestWrapOrder(t *testing.T) {
	inner := &tagClient{name: "inner"}
	wrapped := Wrap(inner, tag("A"), tag("B"))
	tester.Eq(t, wrapped.Name(), "A:B:inner")
}

func TestWrapNoMiddleware(t *testing.T) {
	inner := &tagClient{name: "inner"}
	tester.Eq(t, Wrap(inner).Name(), "inner")
}

func TestLoggingPassesThrough(t *testing.T) {
	inner := &tagClient{name: "inner"}
	wrapped := Wrap(inner, WithLogging(nil))
	out, err := wrapped.Complete(context.Background(), Request{})
	tester.NoErr(t, err)
	tester.Eq(t, out, "inner")

	events, err := wrapped.Stream(context.Background(), Request{})
	tester.NoErr(t, err)
	ev, ok := <-events
	tester.True(t, ok)
	tester.Eq(t, ev.Kind, EventDone)
}
