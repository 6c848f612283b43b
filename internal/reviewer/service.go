// Package reviewer drives the staged contract review: five independent
// stages fan out concurrently, their outputs feed the summary stage, and
// the whole is folded into one immutable review result.
package reviewer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"contractreview/internal/llm"
	llmclient "contractreview/internal/llm/client"
	"contractreview/internal/prompt"
	"contractreview/internal/review"
	"contractreview/internal/settings"
)

const stageTemperature = 0.7

// ClientFactory builds a chat client for one provider endpoint. The default
// factory returns the OpenAI-compatible HTTP client with logging attached;
// tests swap in fakes.
type ClientFactory func(baseURL, apiKey string) llm.ChatClient

// Service performs staged reviews against a configured provider.
type Service struct {
	newClient ClientFactory
	log       *log.Logger
}

// Option mutates a Service during construction.
type Option func(*Service)

// WithClientFactory replaces the transport used for every call.
func WithClientFactory(f ClientFactory) Option {
	return func(s *Service) { s.newClient = f }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		newClient: func(baseURL, apiKey string) llm.ChatClient {
			return llm.Wrap(llmclient.New(baseURL, apiKey), llm.WithLogging(nil))
		},
		log: log.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// stage identifies one review stage for error annotation.
type stage int

const (
	stageMermaid stage = iota
	stageOverview
	stageFoundation
	stageBusiness
	stageLegal
	stageSummary
)

func (st stage) displayName(l prompt.Language) string {
	if prompt.Normalize(l) == prompt.English {
		switch st {
		case stageMermaid:
			return "Flowchart Generation"
		case stageOverview:
			return "Contract Overview"
		case stageFoundation:
			return "Foundation Review"
		case stageBusiness:
			return "Business Terms Review"
		case stageLegal:
			return "Legal Terms Review"
		case stageSummary:
			return "Review Summary"
		}
	}
	switch st {
	case stageMermaid:
		return "流程图生成"
	case stageOverview:
		return "合同概要"
	case stageFoundation:
		return "基础审核"
	case stageBusiness:
		return "业务条款审核"
	case stageLegal:
		return "法律条款审核"
	case stageSummary:
		return "审核总结"
	}
	return ""
}

// PerformReview runs the full six-stage review and returns a fresh Result.
// Cancelling ctx cancels every outstanding stage; no partial result is
// returned.
func (s *Service) PerformReview(ctx context.Context,
	doc review.LoadedDocument, documentName, stance, extraRequirements string,
	st settings.Settings, creds settings.Credentials) (*review.Result, error) {

	if creds.IsEmpty() {
		return nil, review.NewError(review.ErrMissingAPIKey, "")
	}
	stance = strings.TrimSpace(stance)
	if stance == "" {
		return nil, review.NewError(review.ErrMissingStance, "")
	}
	extra := strings.TrimSpace(extraRequirements)
	lang := prompt.Normalize(st.Language)
	if extra == "" {
		extra = prompt.DefaultExtraRequirements(lang)
	}

	client := s.newClient(st.Provider.BaseURL, creds.APIKey)
	defer client.Close()
	model := st.Provider.ChatModel

	// Stages 1-5 are independent and run concurrently.
	var mermaid, overview, foundation, business, legal string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		mermaid, err = s.runStage(gctx, client, model, stageMermaid, lang,
			prompt.Mermaid(doc.Text, lang))
		return
	})
	g.Go(func() (err error) {
		overview, err = s.runStage(gctx, client, model, stageOverview, lang,
			prompt.Overview(doc.Text, lang))
		return
	})
	g.Go(func() (err error) {
		foundation, err = s.runStage(gctx, client, model, stageFoundation, lang,
			prompt.FoundationAudit(doc.Text, stance, extra, lang))
		return
	})
	g.Go(func() (err error) {
		business, err = s.runStage(gctx, client, model, stageBusiness, lang,
			prompt.BusinessAudit(doc.Text, stance, extra, lang))
		return
	})
	g.Go(func() (err error) {
		legal, err = s.runStage(gctx, client, model, stageLegal, lang,
			prompt.LegalAudit(doc.Text, stance, extra, lang))
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	findings := review.JoinFindings(foundation, business, legal)

	// Stage 6 depends on the audits above.
	summary, err := s.runStage(ctx, client, model, stageSummary, lang,
		prompt.AuditSummary(doc.Text, stance, findings, lang))
	if err != nil {
		return nil, err
	}

	result := review.NewResult(doc, documentName, review.Outputs{
		MermaidFlowchart: mermaid,
		ContractOverview: overview,
		FoundationAudit:  foundation,
		BusinessAudit:    business,
		LegalAudit:       legal,
		DetailedFindings: findings,
		AuditSummary:     summary,
	})
	return &result, nil
}

// runStage performs one non-streaming stage call. Service failures come back
// annotated with the stage's display name; structural errors (missing key,
// bad endpoint) and cancellation pass through untouched since they are not
// stage-specific.
func (s *Service) runStage(ctx context.Context, client llm.ChatClient, model string,
	st stage, lang prompt.Language, stagePrompt string) (string, error) {

	out, err := client.Complete(ctx, llm.Request{
		Model: model,
		Messages: []llm.Message{
			{Role: "system", Content: prompt.System(lang)},
			{Role: "user", Content: stagePrompt},
		},
		Temperature: stageTemperature,
	})
	if err == nil {
		return out, nil
	}
	if review.IsStructural(err) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}
	return "", stageError(st, lang, err)
}

func stageError(st stage, lang prompt.Language, err error) error {
	if prompt.Normalize(lang) == prompt.English {
		return review.NewServiceError(fmt.Sprintf("「%s」 stage failed: %s", st.displayName(lang), err.Error()))
	}
	return review.NewServiceError(fmt.Sprintf("「%s」阶段失败：%s", st.displayName(lang), err.Error()))
}

// IdentifyStance asks the reasoner model to identify the contract's parties,
// type, and recommended stance options. An unparseable answer degrades to
// the default identification instead of failing.
func (s *Service) IdentifyStance(ctx context.Context, doc review.LoadedDocument,
	st settings.Settings, creds settings.Credentials) (review.StanceIdentification, error) {

	if creds.IsEmpty() {
		return review.StanceIdentification{}, review.NewError(review.ErrMissingAPIKey, "")
	}
	lang := prompt.Normalize(st.Language)

	client := s.newClient(st.Provider.BaseURL, creds.APIKey)
	defer client.Close()

	out, err := client.Complete(ctx, llm.Request{
		Model: st.Provider.ReasonerModel,
		Messages: []llm.Message{
			{Role: "system", Content: prompt.System(lang)},
			{Role: "user", Content: prompt.IdentifyStance(doc.Text, lang)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return review.StanceIdentification{}, err
	}
	return review.DecodeStance(out, lang == prompt.Chinese), nil
}

// TestConnection issues a minimal request against the given model to verify
// the base URL and API key are usable.
func (s *Service) TestConnection(ctx context.Context, modelName string,
	st settings.Settings, creds settings.Credentials) error {

	if creds.IsEmpty() {
		return review.NewError(review.ErrMissingAPIKey, "")
	}
	probe := "这是一条接口连通性测试请求，请仅回复\"连接成功\"，无需展开分析。"
	if prompt.Normalize(st.Language) == prompt.English {
		probe = "This is a connectivity test request. Reply only with \"connection OK\", no analysis needed."
	}
	client := s.newClient(st.Provider.BaseURL, creds.APIKey)
	defer client.Close()

	_, err := client.Complete(ctx, llm.Request{
		Model:       modelName,
		Messages:    []llm.Message{{Role: "user", Content: probe}},
		Temperature: 0,
	})
	return err
}
