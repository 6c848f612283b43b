// Package prompt builds the model prompts for every review stage and for
// the follow-up conversation. It is pure: no state, no I/O, and the language
// is always an explicit parameter.
package prompt

import "strings"

// Language selects the prompt and display-string language.
type Language string

const (
	Chinese Language = "zh-Hans"
	English Language = "en"
)

// Normalize maps unknown values to the default language.
func Normalize(l Language) Language {
	if l == English {
		return English
	}
	return Chinese
}

// DefaultExtraRequirements is substituted when the user supplies no
// additional review requirements.
func DefaultExtraRequirements(l Language) string {
	if Normalize(l) == English {
		return "No additional review requirements"
	}
	return "无额外审核要求"
}

// System returns the fixed system prompt for the staged review.
func System(l Language) string {
	if Normalize(l) == English {
		return "You are a senior lawyer responsible for reviewing contract terms and identifying potential risks. Include core risks, suggested amendments, and overall conclusions in your output. Keep it concise and output in English."
	}
	return "你是一名资深律师，负责审核合同条款并识别潜在风险。请在输出中包含核心风险、建议修改点和总体结论，适度精炼，输出中文。"
}

// ConversationSystem returns the system prompt for follow-up questions,
// with the review context embedded.
func ConversationSystem(l Language, context string) string {
	if Normalize(l) == English {
		return strings.Join([]string{
			"You are a senior lawyer helping the user understand and analyse contract terms.",
			"The user will ask questions about a contract; answer based on the contract text and the review findings provided.",
			"Be professional and accurate, and point at the specific clauses involved.",
			"",
			"The contract text and review findings follow; refer to them when answering:",
			"",
			context,
		}, "\n")
	}
	return strings.Join([]string{
		"你是一名资深律师，专门协助用户理解和分析合同条款。",
		"用户将针对合同提出各种问题，你需要基于提供的合同原文和审核结果来回答。",
		"回答时要专业、准确，并指出具体的条款位置。",
		"",
		"以下是合同的原文和审核结果，请在回答时参考这些信息：",
		"",
		context,
	}, "\n")
}

// ContextSections are the fixed headers used when the conversation engine
// assembles the contract text and review outputs into one context block.
type ContextSections struct {
	Contract   string
	ReviewHead string
	Overview   string
	Foundation string
	Business   string
	Legal      string
	Summary    string
}

func Sections(l Language) ContextSections {
	if Normalize(l) == English {
		return ContextSections{
			Contract:   "--- Contract Text ---",
			ReviewHead: "--- Review Summary ---",
			Overview:   "Contract overview:",
			Foundation: "Foundation audit:",
			Business:   "Business terms audit:",
			Legal:      "Legal terms audit:",
			Summary:    "Audit summary:",
		}
	}
	return ContextSections{
		Contract:   "--- 合同原文 ---",
		ReviewHead: "--- 审核结果摘要 ---",
		Overview:   "合同概要：",
		Foundation: "基础审核：",
		Business:   "业务条款审核：",
		Legal:      "法律条款审核：",
		Summary:    "审核总结：",
	}
}

func fill(template string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(template)
}
