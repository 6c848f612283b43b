package gateway

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"contractreview/internal/conversation"
)

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
	wsPingEvery = (wsPongWait * 9) / 10
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type wsOutbound struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	MessageID string `json:"messageId"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

func eventType(kind conversation.StreamEventKind) string {
	switch kind {
	case conversation.StreamThinking:
		return "thinking"
	case conversation.StreamResponse:
		return "response"
	case conversation.StreamDone:
		return "done"
	case conversation.StreamFailed:
		return "failed"
	}
	return "unknown"
}

// handleConversationWS streams live conversation deltas to the client. An
// optional session_id query parameter narrows the feed to one session.
func (a *App) handleConversationWS(w http.ResponseWriter, r *http.Request) {
	var filter uuid.UUID
	if raw := r.URL.Query().Get("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid session_id", http.StatusBadRequest)
			return
		}
		filter = id
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := a.events.Subscribe()
	defer unsubscribe()

	// Reader goroutine: surfaces client disconnects and handles pongs.
	done := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingEvery)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filter != uuid.Nil && ev.SessionID != filter {
				continue
			}
			out := wsOutbound{
				Type:      eventType(ev.Kind),
				SessionID: ev.SessionID.String(),
				MessageID: ev.MessageID.String(),
				Text:      ev.Text,
			}
			if ev.Err != nil {
				out.Error = ev.Err.Error()
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(out); err != nil {
				return
			}
		}
	}
}
