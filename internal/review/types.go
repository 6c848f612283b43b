package review

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"contractreview/internal/conversation"
)

// DocumentKind is the source format of a reviewed contract.
type DocumentKind string

const (
	DocumentPlainText DocumentKind = "TXT"
	DocumentPDF       DocumentKind = "PDF"
	DocumentDocx      DocumentKind = "DOCX"
)

// LoadedDocument is the plain-text content of a contract plus size metadata.
type LoadedDocument struct {
	Kind                DocumentKind `json:"kind"`
	Text                string       `json:"text"`
	CharacterCount      int          `json:"character_count"`
	EstimatedTokenCount int          `json:"estimated_token_count"`
}

// Outputs holds the artifacts generated by the six review stages.
// Each field is written by exactly one stage and never partially overwritten.
type Outputs struct {
	MermaidFlowchart string `json:"mermaid_flowchart"`
	ContractOverview string `json:"contract_overview"`
	FoundationAudit  string `json:"foundation_audit"`
	BusinessAudit    string `json:"business_audit"`
	LegalAudit       string `json:"legal_audit"`
	DetailedFindings string `json:"detailed_findings"`
	AuditSummary     string `json:"audit_summary"`
}

// Result is one completed review. Immutable once created, except for the
// Conversations field which is replaced wholesale by the conversation engine.
type Result struct {
	ID                  uuid.UUID               `json:"id"`
	DocumentName        string                  `json:"document_name"`
	DocumentKind        DocumentKind            `json:"document_kind"`
	CharacterCount      int                     `json:"character_count"`
	EstimatedTokenCount int                     `json:"estimated_token_count"`
	ReviewedAt          time.Time               `json:"reviewed_at"`
	Outputs             Outputs                 `json:"outputs"`
	Conversations       conversation.Collection `json:"conversations"`
}

// NewResult wraps stage outputs into a fresh Result with a new identity and
// an empty conversation collection.
func NewResult(doc LoadedDocument, documentName string, outputs Outputs) Result {
	return Result{
		ID:                  uuid.New(),
		DocumentName:        documentName,
		DocumentKind:        doc.Kind,
		CharacterCount:      doc.CharacterCount,
		EstimatedTokenCount: doc.EstimatedTokenCount,
		ReviewedAt:          time.Now(),
		Outputs:             outputs,
	}
}

// JoinFindings concatenates the three audit outputs, skipping blank ones,
// joined by a blank line. The summary stage depends on this exact form.
func JoinFindings(foundation, business, legal string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{foundation, business, legal} {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n\n")
}
