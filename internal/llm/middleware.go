package llm

// Middleware decorates a ChatClient to inject cross-cutting concerns
// (logging, retries) without the client knowing.
type Middleware func(ChatClient) ChatClient

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner ChatClient, mws ...Middleware) ChatClient {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}
