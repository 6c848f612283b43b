// Package gateway exposes the review pipeline, conversation engine and
// history aggregate over HTTP, with a websocket feed for streaming
// conversation updates.
package gateway

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"contractreview/internal/artifact"
	"contractreview/internal/config"
	"contractreview/internal/conversation"
	"contractreview/internal/docloader"
	"contractreview/internal/history"
	"contractreview/internal/llm"
	llmclient "contractreview/internal/llm/client"
	"contractreview/internal/report"
	"contractreview/internal/review"
	"contractreview/internal/reviewer"
	"contractreview/internal/safeio"
	"contractreview/internal/settings"
)

// App wires the core services together and owns the HTTP surface.
type App struct {
	log       *log.Logger
	cfg       *config.Config
	contracts *safeio.SafeFS
	loader    *docloader.Loader
	reviewer  *reviewer.Service
	history   *history.Service
	engine    *conversation.Engine
	exporter  *report.Exporter
	events    *eventHub

	engineOpts []conversation.EngineOption
}

// Option mutates an App during construction.
type Option func(*App)

// WithReviewer swaps the review service (tests inject fakes here).
func WithReviewer(svc *reviewer.Service) Option {
	return func(a *App) { a.reviewer = svc }
}

// WithEngineOptions appends options to the conversation engine, applied
// after the default wiring.
func WithEngineOptions(opts ...conversation.EngineOption) Option {
	return func(a *App) { a.engineOpts = append(a.engineOpts, opts...) }
}

func New(cfg *config.Config, store history.Store, artifacts artifact.Store, logger *log.Logger, opts ...Option) *App {
	if logger == nil {
		logger = log.Default()
	}
	contracts, err := safeio.NewSafeFS(cfg.ContractsDir)
	if err != nil {
		logger.Printf("contracts dir unavailable: %v", err)
	}
	app := &App{
		log:       logger,
		cfg:       cfg,
		contracts: contracts,
		loader:    docloader.New(),
		reviewer:  reviewer.NewService(reviewer.WithLogger(logger)),
		history:   history.NewService(store, logger),
		exporter:  report.NewExporter(artifacts),
		events:    newEventHub(),
	}
	for _, o := range opts {
		o(app)
	}

	factory := func(baseURL, apiKey string) llm.ChatClient {
		return llm.Wrap(llmclient.New(baseURL, apiKey), llm.WithLogging(logger))
	}
	engineOpts := []conversation.EngineOption{
		conversation.WithLogger(logger),
		conversation.WithPersister(app.persistConversations),
		conversation.WithObserver(app.events.Publish),
	}
	engineOpts = append(engineOpts, app.engineOpts...)
	app.engine = conversation.NewEngine(factory, engineOpts...)
	return app
}

// persistConversations writes a conversation snapshot back into whichever
// history record carries the result. Missing records are silent no-ops.
func (a *App) persistConversations(resultID uuid.UUID, snapshot conversation.Collection) {
	a.history.UpdateReviewResult(context.Background(), resultID, func(r *review.Result) {
		r.Conversations = snapshot
	})
}

// openRecord scopes the conversation engine to a completed record.
func (a *App) openRecord(record history.Record) {
	result := record.Result
	a.engine.Attach(result.ID, conversation.ReviewContext{
		ContractText:    record.ContractText,
		Overview:        result.Outputs.ContractOverview,
		FoundationAudit: result.Outputs.FoundationAudit,
		BusinessAudit:   result.Outputs.BusinessAudit,
		LegalAudit:      result.Outputs.LegalAudit,
		AuditSummary:    result.Outputs.AuditSummary,
	}, result.Conversations)
}

// Load pulls the persisted history into memory. Called once at startup.
func (a *App) Load(ctx context.Context) {
	a.history.Load(ctx)
}

func (a *App) settings() settings.Settings       { return a.cfg.Settings }
func (a *App) credentials() settings.Credentials { return a.cfg.Credentials }

// Handler builds the HTTP route table.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/load", a.handleLoad)
	mux.HandleFunc("POST /api/review", a.handleReview)
	mux.HandleFunc("POST /api/stance", a.handleStance)
	mux.HandleFunc("POST /api/test-connection", a.handleTestConnection)

	mux.HandleFunc("GET /api/history", a.handleHistoryList)
	mux.HandleFunc("POST /api/history", a.handleHistoryCreate)
	mux.HandleFunc("GET /api/history/{id}", a.handleHistoryGet)
	mux.HandleFunc("PUT /api/history/{id}/title", a.handleHistoryTitle)
	mux.HandleFunc("DELETE /api/history/{id}", a.handleHistoryDelete)
	mux.HandleFunc("POST /api/history/{id}/open", a.handleHistoryOpen)

	mux.HandleFunc("GET /api/sessions", a.handleSessionList)
	mux.HandleFunc("POST /api/sessions", a.handleSessionCreate)
	mux.HandleFunc("DELETE /api/sessions/{id}", a.handleSessionDelete)
	mux.HandleFunc("PUT /api/sessions/{id}/title", a.handleSessionRename)
	mux.HandleFunc("POST /api/sessions/{id}/clear", a.handleSessionClear)
	mux.HandleFunc("POST /api/sessions/{id}/messages", a.handleSessionSend)
	mux.HandleFunc("POST /api/sessions/{id}/cancel", a.handleSessionCancel)

	mux.HandleFunc("POST /api/export/{id}", a.handleExport)
	mux.HandleFunc("GET /api/export/{id}/{path}", a.handleExportGet)

	mux.HandleFunc("GET /ws/conversation", a.handleConversationWS)

	return withCORS(mux)
}

// withCORS mirrors the permissive policy the desktop frontend needs.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
