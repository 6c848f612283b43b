package llm

import (
	"context"
	"log"
	"time"
)

// WithLogging logs request size and errors. Provide a custom logger or nil
// to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next ChatClient) ChatClient {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next ChatClient
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Complete(ctx context.Context, req Request) (string, error) {
	l.log.Printf("llm request (%s): model=%s messages=%d bytes=%d",
		l.next.Name(), req.Model, len(req.Messages), requestBytes(req))
	start := time.Now()
	out, err := l.next.Complete(ctx, req)
	if err != nil {
		l.log.Printf("llm error (%s): %v", l.next.Name(), err)
		return "", err
	}
	l.log.Printf("llm response (%s): %d bytes in %s", l.next.Name(), len(out), time.Since(start).Round(time.Millisecond))
	return out, nil
}

func (l *logging) Stream(ctx context.Context, req Request) (<-chan Event, error) {
	l.log.Printf("llm stream request (%s): model=%s messages=%d bytes=%d",
		l.next.Name(), req.Model, len(req.Messages), requestBytes(req))
	ch, err := l.next.Stream(ctx, req)
	if err != nil {
		l.log.Printf("llm stream error (%s): %v", l.next.Name(), err)
		return nil, err
	}
	out := make(chan Event)
	go func() {
		defer close(out)
		for ev := range ch {
			if ev.Kind == EventFailed {
				l.log.Printf("llm stream failed (%s): %v", l.next.Name(), ev.Err)
			}
			out <- ev
		}
	}()
	return out, nil
}

func requestBytes(req Request) int {
	n := 0
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}
