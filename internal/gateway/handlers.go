package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"contractreview/internal/artifact"
	"contractreview/internal/prompt"
	"contractreview/internal/review"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps domain error kinds onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if kind, ok := review.KindOf(err); ok {
		switch kind {
		case review.ErrMissingAPIKey:
			status = http.StatusUnauthorized
		case review.ErrService, review.ErrDecodeFailed:
			status = http.StatusBadGateway
		default:
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(r.PathValue(name)))
}

// handleLoad reads a contract file from the configured contracts directory
// and returns the normalized document. Paths are confined to that
// directory.
func (a *App) handleLoad(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	if a.contracts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "contracts directory not configured"})
		return
	}
	resolved, err := a.contracts.Resolve(in.Path)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	doc, err := a.loader.Load(resolved, a.cfg.MaxTokens)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

type reviewRequest struct {
	RecordID          string `json:"record_id,omitempty"`
	DocumentName      string `json:"document_name"`
	Text              string `json:"text"`
	Stance            string `json:"stance"`
	ExtraRequirements string `json:"extra_requirements,omitempty"`
	TitleOverride     string `json:"title_override,omitempty"`
}

// handleReview runs the full staged review against the submitted contract
// text, completes the target history record (a fresh draft when none is
// given) and opens a conversation scope on the new result.
func (a *App) handleReview(w http.ResponseWriter, r *http.Request) {
	var in reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}

	doc, err := a.loader.FromText(in.DocumentName, in.Text, a.cfg.MaxTokens)
	if err != nil {
		writeError(w, err)
		return
	}

	lang := prompt.Normalize(a.settings().Language)
	recordID, err := uuid.Parse(strings.TrimSpace(in.RecordID))
	if err != nil {
		title := "新的审阅"
		if lang == prompt.English {
			title = "New review"
		}
		recordID = a.history.CreateDraft(r.Context(), title).ID
	}

	result, err := a.reviewer.PerformReview(r.Context(), doc, in.DocumentName,
		in.Stance, in.ExtraRequirements, a.settings(), a.credentials())
	if err != nil {
		writeError(w, err)
		return
	}

	a.history.ApplyReviewResult(r.Context(), recordID, *result, doc.Text, in.TitleOverride, lang)

	record, ok := a.history.Record(recordID)
	if ok && record.Result != nil {
		a.openRecord(record)
		writeJSON(w, http.StatusOK, record)
		return
	}
	// The record vanished mid-review; the result is still returned.
	writeJSON(w, http.StatusOK, result)
}

type stanceRequest struct {
	DocumentName string `json:"document_name"`
	Text         string `json:"text"`
}

func (a *App) handleStance(w http.ResponseWriter, r *http.Request) {
	var in stanceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	doc, err := a.loader.FromText(in.DocumentName, in.Text, a.cfg.MaxTokens)
	if err != nil {
		writeError(w, err)
		return
	}
	identification, err := a.reviewer.IdentifyStance(r.Context(), doc, a.settings(), a.credentials())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identification)
}

func (a *App) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	model := strings.TrimSpace(in.Model)
	if model == "" {
		model = a.settings().Provider.ChatModel
	}
	if err := a.reviewer.TestConnection(r.Context(), model, a.settings(), a.credentials()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *App) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.history.List())
}

func (a *App) handleHistoryCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "新的审阅"
		if prompt.Normalize(a.settings().Language) == prompt.English {
			title = "New review"
		}
	}
	record := a.history.CreateDraft(r.Context(), title)
	writeJSON(w, http.StatusCreated, record)
}

func (a *App) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid record id"})
		return
	}
	record, ok := a.history.Record(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "record not found"})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (a *App) handleHistoryTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid record id"})
		return
	}
	var in struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	a.history.UpdateTitle(r.Context(), id, in.Title)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *App) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid record id"})
		return
	}
	a.history.Delete(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleHistoryOpen scopes the conversation engine to a completed record so
// session operations address it.
func (a *App) handleHistoryOpen(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid record id"})
		return
	}
	record, ok := a.history.Record(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "record not found"})
		return
	}
	if record.Result == nil {
		writeJSON(w, http.StatusConflict, errorBody{Error: "record has no review result"})
		return
	}
	a.openRecord(record)
	writeJSON(w, http.StatusOK, a.engine.Collection())
}

func (a *App) handleSessionList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.engine.Collection())
}

func (a *App) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	session := a.engine.CreateSession(a.settings().Language)
	writeJSON(w, http.StatusCreated, session)
}

func (a *App) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid session id"})
		return
	}
	a.engine.DeleteSession(id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *App) handleSessionRename(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid session id"})
		return
	}
	var in struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	a.engine.RenameSession(id, in.Title)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *App) handleSessionClear(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid session id"})
		return
	}
	a.engine.ClearSession(id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleSessionSend blocks until the streamed reply settles. Live deltas go
// out on the websocket feed; the final session state is the response body.
func (a *App) handleSessionSend(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid session id"})
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json body"})
		return
	}
	err = a.engine.SendMessage(r.Context(), id, in.Text, a.settings(), a.credentials())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.engine.Collection())
}

func (a *App) handleSessionCancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid session id"})
		return
	}
	a.engine.Cancel(id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid result id"})
		return
	}
	result, ok := a.findByResultID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "result not found"})
		return
	}
	paths, err := a.exporter.Export(r.Context(), *result, a.settings().Language)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}

func (a *App) handleExportGet(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	path := strings.TrimSpace(r.PathValue("path"))
	content, err := a.exporter.Fetch(r.Context(), id, path)
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "artifact not found"})
			return
		}
		writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(content)
}

func (a *App) findByResultID(resultID uuid.UUID) (*review.Result, bool) {
	for _, record := range a.history.List() {
		if record.Result != nil && record.Result.ID == resultID {
			return record.Result, true
		}
	}
	return nil, false
}
