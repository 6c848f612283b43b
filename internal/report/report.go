// Package report renders a completed review into a markdown document and
// exports it through the artifact store.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contractreview/internal/artifact"
	"contractreview/internal/prompt"
	"contractreview/internal/review"
)

type headings struct {
	title      string
	meta       string
	flowchart  string
	overview   string
	foundation string
	business   string
	legal      string
	summary    string
	transcript string
	thinking   string
	roleUser   string
	roleBot    string
}

func headingsFor(l prompt.Language) headings {
	if prompt.Normalize(l) == prompt.English {
		return headings{
			title:      "Contract Review Report",
			meta:       "Document",
			flowchart:  "Transaction Flowchart",
			overview:   "Contract Overview",
			foundation: "Foundation Audit",
			business:   "Business Terms Audit",
			legal:      "Legal Terms Audit",
			summary:    "Review Summary",
			transcript: "Conversation Transcript",
			thinking:   "Reasoning",
			roleUser:   "User",
			roleBot:    "Assistant",
		}
	}
	return headings{
		title:      "合同审核报告",
		meta:       "文档信息",
		flowchart:  "交易流程图",
		overview:   "合同概要",
		foundation: "基础审核",
		business:   "业务条款审核",
		legal:      "法律条款审核",
		summary:    "审核总结",
		transcript: "对话记录",
		thinking:   "思考过程",
		roleUser:   "用户",
		roleBot:    "助手",
	}
}

// Render produces the full markdown report for one review result.
func Render(result review.Result, l prompt.Language) string {
	h := headingsFor(l)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.title)
	fmt.Fprintf(&b, "## %s\n\n", h.meta)
	fmt.Fprintf(&b, "- %s (%s)\n", result.DocumentName, result.DocumentKind)
	fmt.Fprintf(&b, "- %d chars / ~%d tokens\n", result.CharacterCount, result.EstimatedTokenCount)
	fmt.Fprintf(&b, "- %s\n\n", result.ReviewedAt.Format(time.RFC3339))

	section := func(title, body string) {
		body = strings.TrimSpace(body)
		if body == "" {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", title, body)
	}
	if flow := strings.TrimSpace(result.Outputs.MermaidFlowchart); flow != "" {
		fmt.Fprintf(&b, "## %s\n\n```mermaid\n%s\n```\n\n", h.flowchart, flow)
	}
	section(h.overview, result.Outputs.ContractOverview)
	section(h.foundation, result.Outputs.FoundationAudit)
	section(h.business, result.Outputs.BusinessAudit)
	section(h.legal, result.Outputs.LegalAudit)
	section(h.summary, result.Outputs.AuditSummary)
	return b.String()
}

// RenderTranscript produces a markdown transcript of every conversation
// session of the result.
func RenderTranscript(result review.Result, l prompt.Language) string {
	h := headingsFor(l)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.transcript)
	for _, session := range result.Conversations.Sessions {
		fmt.Fprintf(&b, "## %s\n\n", session.Title)
		for _, msg := range session.Messages {
			role := h.roleBot
			if msg.Role == "user" {
				role = h.roleUser
			}
			fmt.Fprintf(&b, "**%s** (%s)\n\n", role, msg.Timestamp.Format("2006-01-02 15:04"))
			if thinking := strings.TrimSpace(msg.Thinking); thinking != "" {
				fmt.Fprintf(&b, "> %s: %s\n\n", h.thinking, strings.ReplaceAll(thinking, "\n", "\n> "))
			}
			fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(msg.Content))
		}
	}
	return b.String()
}

// Exporter writes rendered reports into an artifact store, keyed by review
// result id.
type Exporter struct {
	store artifact.Store
}

func NewExporter(store artifact.Store) *Exporter {
	return &Exporter{store: store}
}

// Fetch reads one previously exported artifact back.
func (e *Exporter) Fetch(ctx context.Context, resultID, path string) ([]byte, error) {
	return e.store.Get(ctx, resultID, path)
}

// Export stores the report and, when the result has any conversation
// messages, the transcript. It returns the stored paths.
func (e *Exporter) Export(ctx context.Context, result review.Result, l prompt.Language) ([]string, error) {
	id := result.ID.String()
	paths := []string{"report.md"}
	if err := e.store.Put(ctx, id, "report.md", []byte(Render(result, l))); err != nil {
		return nil, err
	}
	hasMessages := false
	for _, s := range result.Conversations.Sessions {
		if len(s.Messages) > 0 {
			hasMessages = true
			break
		}
	}
	if hasMessages {
		if err := e.store.Put(ctx, id, "transcript.md", []byte(RenderTranscript(result, l))); err != nil {
			return nil, err
		}
		paths = append(paths, "transcript.md")
	}
	return paths, nil
}
