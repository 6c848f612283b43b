package prompt

import (
	"strings"
	"testing"

	"contractreview/internal/tester"
)

func TestNormalize(t *testing.T) {
	tester.Eq(t, Normalize(Chinese), Chinese)
	tester.Eq(t, Normalize(English), English)
	tester.Eq(t, Normalize(Language("fr")), Chinese)
	tester.Eq(t, Normalize(Language("")), Chinese)
}

func TestDefaultExtraRequirements(t *testing.T) {
	tester.Eq(t, DefaultExtraRequirements(Chinese), "无额外审核要求")
	tester.Eq(t, DefaultExtraRequirements(English), "No additional review requirements")
}

func TestStagePromptsFillPlaceholders(t *testing.T) {
	doc := "合同正文ABC"
	stance := "作为甲方XYZ"
	extra := "重点看付款QWE"

	for name, p := range map[string]string{
		"mermaid":    Mermaid(doc, Chinese),
		"overview":   Overview(doc, Chinese),
		"foundation": FoundationAudit(doc, stance, extra, Chinese),
		"business":   BusinessAudit(doc, stance, extra, Chinese),
		"legal":      LegalAudit(doc, stance, extra, Chinese),
		"identify":   IdentifyStance(doc, Chinese),
	} {
		tester.Contains(t, p, doc, name)
		tester.False(t, strings.Contains(p, "{{"), name)
	}
	for name, p := range map[string]string{
		"foundation": FoundationAudit(doc, stance, extra, Chinese),
		"business":   BusinessAudit(doc, stance, extra, Chinese),
		"legal":      LegalAudit(doc, stance, extra, Chinese),
	} {
		tester.Contains(t, p, stance, name)
		tester.Contains(t, p, extra, name)
	}
}

func TestAuditSummaryEmbedsFindings(t *testing.T) {
	p := AuditSummary("合同正文", "作为甲方", "详细意见列表123", Chinese)
	tester.Contains(t, p, "合同正文")
	tester.Contains(t, p, "作为甲方")
	tester.Contains(t, p, "详细意见列表123")
	tester.False(t, strings.Contains(p, "{{"))
}

func TestEnglishTemplatesSelected(t *testing.T) {
	p := Overview("contract body", English)
	tester.Contains(t, p, "contract body")
	tester.Contains(t, p, "objectively summarize")
}

func TestConversationSystemEmbedsContext(t *testing.T) {
	zh := ConversationSystem(Chinese, "上下文材料")
	tester.Contains(t, zh, "资深律师")
	tester.Contains(t, zh, "上下文材料")

	en := ConversationSystem(English, "context block")
	tester.Contains(t, en, "senior lawyer")
	tester.Contains(t, en, "context block")
}

func TestSectionsHeaders(t *testing.T) {
	zh := Sections(Chinese)
	tester.Eq(t, zh.Contract, "--- 合同原文 ---")
	tester.Eq(t, zh.Summary, "审核总结：")

	en := Sections(English)
	tester.Eq(t, en.Contract, "--- Contract Text ---")
	tester.Eq(t, en.Overview, "Contract overview:")
}
